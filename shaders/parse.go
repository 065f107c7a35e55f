package shaders

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

const (
	// ShaderTag starts a section line, e.g. '#shader vertex'
	ShaderTag = "#shader"
)

type ShaderProgramSource struct {
	VertexSource   string
	FragmentSource string
}

type parseState int8

const (
	parseState_None parseState = iota
	parseState_ReadingVertex
	parseState_ReadingFragment
)

// ParseShader splits a combined shader source into its vertex and fragment parts.
//
// A line containing '#shader' and 'vertex' starts the vertex section, and one containing '#shader' and
// 'fragment' starts the fragment section. A tag line with neither word is dropped and does not change the current section.
// Every other line is copied as-is (plus a newline) into the current section.
// Lines before the first section tag are dropped.
//
// A section that never appears is returned as an empty string, only read errors are returned as errors.
func ParseShader(r io.Reader) (ShaderProgramSource, error) {

	var (
		state parseState
		vert  strings.Builder
		frag  strings.Builder
	)

	br := bufio.NewReader(r)
	for {

		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return ShaderProgramSource{}, err
		}

		// The last line might not end with a newline, but an empty read at EOF is not a line
		if len(line) > 0 {

			line = strings.TrimSuffix(line, "\n")

			if strings.Contains(line, ShaderTag) {

				if strings.Contains(line, "vertex") {
					state = parseState_ReadingVertex
				} else if strings.Contains(line, "fragment") {
					state = parseState_ReadingFragment
				}

			} else {

				switch state {
				case parseState_ReadingVertex:
					vert.WriteString(line)
					vert.WriteByte('\n')
				case parseState_ReadingFragment:
					frag.WriteString(line)
					frag.WriteByte('\n')
				}
			}
		}

		if err != nil {
			break
		}
	}

	return ShaderProgramSource{
		VertexSource:   vert.String(),
		FragmentSource: frag.String(),
	}, nil
}

func ParseShaderFile(shaderPath string) (ShaderProgramSource, error) {

	f, err := os.Open(shaderPath)
	if err != nil {
		return ShaderProgramSource{}, err
	}
	defer f.Close()

	return ParseShader(f)
}
