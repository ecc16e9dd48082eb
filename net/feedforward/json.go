package feedforward

import "compress/lzw"
import "encoding/json"
import "io"
import "os"

import "github.com/pkg/errors"
import "github.com/x448/float16"

// ErrWeightsMismatch is returned when stored weights do not fit the network.
var ErrWeightsMismatch = errors.New("weights do not match network")

type jsonParam struct {
	Name string   `json:"name"`
	Data []uint16 `json:"data"`
}

// WriteCompressedWeightsToFile writes model weights to a lzw file
func (f FeedforwardNetwork) WriteCompressedWeightsToFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create weights")
	}
	err = f.WriteCompressedWeights(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteCompressedWeights writes model weights to a writer as lzw compressed
// JSON, every weight stored as half precision bits.
func (f FeedforwardNetwork) WriteCompressedWeights(w io.Writer) error {
	lw := lzw.NewWriter(w, lzw.LSB, 8)

	var params = f.Params()
	var out = make([]jsonParam, len(params))
	for i, p := range params {
		out[i].Name = p.Name
		out[i].Data = make([]uint16, len(p.Data))
		for j, v := range p.Data {
			out[i].Data[j] = float16.Fromfloat32(float32(v)).Bits()
		}
	}
	if err := json.NewEncoder(lw).Encode(out); err != nil {
		return errors.Wrap(err, "encode weights")
	}
	return lw.Close()
}

// ReadCompressedWeightsFromFile reads model weights from a lzw file
func (f FeedforwardNetwork) ReadCompressedWeightsFromFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "open weights")
	}
	defer file.Close()
	return f.ReadCompressedWeights(file)
}

// ReadCompressedWeights reads model weights from a reader. The network is
// left untouched unless every stored tensor matches its parameter.
func (f FeedforwardNetwork) ReadCompressedWeights(r io.Reader) error {
	lr := lzw.NewReader(r, lzw.LSB, 8)
	defer lr.Close()

	var in []jsonParam
	if err := json.NewDecoder(lr).Decode(&in); err != nil {
		return errors.Wrap(err, "decode weights")
	}
	var params = f.Params()
	if len(in) != len(params) {
		return errors.Wrapf(ErrWeightsMismatch, "%d tensors stored, network has %d", len(in), len(params))
	}
	for i, p := range params {
		if in[i].Name != p.Name || len(in[i].Data) != len(p.Data) {
			return errors.Wrapf(ErrWeightsMismatch, "tensor %d is %s[%d], network expects %s[%d]",
				i, in[i].Name, len(in[i].Data), p.Name, len(p.Data))
		}
	}
	for i, p := range params {
		for j, u := range in[i].Data {
			p.Data[j] = float64(float16.Frombits(u).Float32())
		}
	}
	return nil
}
