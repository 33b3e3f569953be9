package image

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// PGM errors.
var (
	// ErrNotPGM is returned when the magic number is not P2 or P5.
	ErrNotPGM = errors.New("image: not a valid PGM image")

	// ErrBadHeader is returned when a header field is missing or malformed.
	ErrBadHeader = errors.New("image: malformed PGM header")

	// ErrShortData is returned when the file ends before all samples are read.
	ErrShortData = errors.New("image: PGM data too short")

	// ErrSampleRange is returned when a sample is negative or above maxShade.
	ErrSampleRange = errors.New("image: sample outside [0, maxShade]")
)

// pgmReader tokenizes netpbm headers, skipping whitespace and '#' comments.
type pgmReader struct {
	r *bufio.Reader
}

// skipSpace consumes whitespace and comments up to the next token byte.
func (p *pgmReader) skipSpace() error {
	for {
		c, err := p.r.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case c == '#':
			if _, err := p.r.ReadString('\n'); err != nil {
				return err
			}
		case isSpace(c):
		default:
			return p.r.UnreadByte()
		}
	}
}

// token returns the next whitespace-delimited token.
func (p *pgmReader) token() (string, error) {
	if err := p.skipSpace(); err != nil {
		return "", err
	}
	var buf []byte
	for {
		c, err := p.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(c) || c == '#' {
			if err := p.r.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
		buf = append(buf, c)
	}
	return string(buf), nil
}

// readInt reads the next token as a non-negative decimal integer.
func (p *pgmReader) readInt(what string) (int, error) {
	tok, err := p.token()
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrBadHeader, what, err)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrBadHeader, what, tok)
	}
	return n, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// DecodePGM decodes a plain (P2) or raw (P5) portable graymap.
//
// The header is the magic number, the width, the height and the max shade,
// in that order, separated by whitespace. Comments start with '#' and run
// to the end of the line; they may appear anywhere in the header and, for
// P2, between samples. Samples above the declared max shade are rejected
// with ErrSampleRange, which includes PGM edge maps written with an input
// max shade below 255.
func DecodePGM(r io.Reader) (*Grid, Format, error) {
	p := &pgmReader{r: bufio.NewReader(r)}

	magic, err := p.token()
	if err != nil {
		if err == io.EOF {
			return nil, 0, ErrEmptyData
		}
		return nil, 0, fmt.Errorf("image: read PGM magic: %w", err)
	}
	var format Format
	switch magic {
	case "P2":
		format = FormatPGMPlain
	case "P5":
		format = FormatPGMRaw
	default:
		return nil, 0, fmt.Errorf("%w: magic %q", ErrNotPGM, magic)
	}

	width, err := p.readInt("width")
	if err != nil {
		return nil, 0, err
	}
	height, err := p.readInt("height")
	if err != nil {
		return nil, 0, err
	}
	maxShade, err := p.readInt("max shade")
	if err != nil {
		return nil, 0, err
	}

	g, err := NewGrid(width, height, maxShade)
	if err != nil {
		return nil, 0, fmt.Errorf("image: PGM header %dx%d max %d: %w", width, height, maxShade, err)
	}

	if format == FormatPGMPlain {
		err = decodePlainSamples(p, g)
	} else {
		err = decodeRawSamples(p.r, g)
	}
	if err != nil {
		return nil, 0, err
	}
	return g, format, nil
}

func decodePlainSamples(p *pgmReader, g *Grid) error {
	pix := g.Pix()
	for i := range pix {
		tok, err := p.token()
		if err == io.EOF || (err == nil && tok == "") {
			return fmt.Errorf("%w: got %d of %d samples", ErrShortData, i, len(pix))
		}
		if err != nil {
			return fmt.Errorf("image: read PGM sample: %w", err)
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return fmt.Errorf("image: PGM sample %d: invalid value %q", i, tok)
		}
		if v < 0 || v > g.maxShade {
			return fmt.Errorf("%w: sample %d = %d, max %d", ErrSampleRange, i, v, g.maxShade)
		}
		pix[i] = int32(v)
	}
	return nil
}

func decodeRawSamples(r *bufio.Reader, g *Grid) error {
	// Exactly one whitespace byte separates the header from the raster.
	c, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("%w: missing raster", ErrShortData)
	}
	if !isSpace(c) {
		return fmt.Errorf("%w: no whitespace after max shade", ErrBadHeader)
	}

	pix := g.Pix()
	bps := 1
	if g.maxShade > 255 {
		bps = 2
	}
	row := make([]byte, g.width*bps)
	for y := range g.height {
		if _, err := io.ReadFull(r, row); err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrShortData, y, err)
		}
		dst := pix[y*g.width : (y+1)*g.width]
		for x := range dst {
			var v int
			if bps == 1 {
				v = int(row[x])
			} else {
				v = int(row[2*x])<<8 | int(row[2*x+1])
			}
			if v > g.maxShade {
				return fmt.Errorf("%w: sample (%d,%d) = %d, max %d", ErrSampleRange, x, y, v, g.maxShade)
			}
			dst[x] = int32(v)
		}
	}
	return nil
}

// EncodePGM writes g as a plain (P2) or raw (P5) portable graymap.
//
// Plain output has one image row per line, each sample followed by a single
// space. Values are written as stored and are not checked against maxShade,
// so a grid holding values above it encodes to a file DecodePGM rejects.
func EncodePGM(w io.Writer, g *Grid, format Format) error {
	if format != FormatPGMPlain && format != FormatPGMRaw {
		return fmt.Errorf("%w: %v is not a PGM format", ErrUnsupportedFormat, format)
	}

	bw := bufio.NewWriter(w)
	magic := "P2"
	if format == FormatPGMRaw {
		magic = "P5"
	}
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", magic, g.width, g.height, g.maxShade); err != nil {
		return fmt.Errorf("image: write PGM header: %w", err)
	}

	if format == FormatPGMPlain {
		var num []byte
		for y := range g.height {
			for _, v := range g.Row(y) {
				num = strconv.AppendInt(num[:0], int64(v), 10)
				num = append(num, ' ')
				if _, err := bw.Write(num); err != nil {
					return fmt.Errorf("image: write PGM row %d: %w", y, err)
				}
			}
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("image: write PGM row %d: %w", y, err)
			}
		}
	} else {
		wide := g.maxShade > 255
		for y := range g.height {
			for _, v := range g.Row(y) {
				var err error
				if wide {
					_, err = bw.Write([]byte{byte(v >> 8), byte(v)})
				} else {
					err = bw.WriteByte(byte(v))
				}
				if err != nil {
					return fmt.Errorf("image: write PGM row %d: %w", y, err)
				}
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("image: flush PGM: %w", err)
	}
	return nil
}
