package bitgen

import (
	"github.com/mailru/easyjson/buffer"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// MarshalState encodes s as JSON, appending to into when it has capacity.
func MarshalState(s State, into []byte) ([]byte, error) {
	writer := jwriter.Writer{
		Buffer: buffer.Buffer{
			Buf: into[:0],
		},
	}
	s.MarshalEasyJSON(&writer)
	return writer.BuildBytes()
}

// UnmarshalState decodes a JSON encoded State.
func UnmarshalState(data []byte) (State, error) {
	var s State
	lexer := jlexer.Lexer{
		Data:              data,
		UseMultipleErrors: false,
	}
	s.UnmarshalEasyJSON(&lexer)
	if err := lexer.Error(); err != nil {
		return State{}, err
	}
	return s, nil
}
