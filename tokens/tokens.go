package tokens

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrSyntax is matched by every SyntaxError.
var ErrSyntax = errors.New("invalid token")

// SyntaxError reports a token that is not a number.
type SyntaxError struct {
	// Index is the zero-based position of the token in the input.
	Index int
	Token string
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("token %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *SyntaxError) Unwrap() []error { return []error{ErrSyntax, e.Err} }

// maxTokenSize bounds a single token. Numbers are far shorter.
const maxTokenSize = 1 << 20

// Parse reads whitespace-separated numbers from r until EOF.
// r is read as-is; use Decompress for compressed input.
func Parse(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	var values []float64
	for i := 0; sc.Scan(); i++ {
		tok := sc.Text()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) {
				err = ne.Err
			}
			return nil, &SyntaxError{Index: i, Token: tok, Err: err}
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// Read detects the compression of r and parses its numbers.
func Read(r io.Reader) ([]float64, error) {
	rc, _, err := Decompress(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return Parse(rc)
}

// ReadFile reads and parses the file at path. A path of "-" reads stdin.
func ReadFile(path string) ([]float64, error) {
	if path == "-" {
		return Read(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	values, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// Write formats values one per line, compressed with c.
func Write(w io.Writer, values []float64, c Compression) (err error) {
	wc, err := Compress(w, c)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(wc)
	var buf []byte
	for _, v := range values {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
