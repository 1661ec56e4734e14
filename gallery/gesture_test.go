package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwipeInterpreter(t *testing.T) {
	s := NewSwipeInterpreter("image", 50)

	tests := []struct {
		name string
		drag Drag
		want Command
	}{
		{name: "right drag", drag: Drag{Origin: "image", StartX: 100, EndX: 160}, want: Previous},
		{name: "left drag", drag: Drag{Origin: "image", StartX: 160, EndX: 100}, want: Next},
		{name: "short drag", drag: Drag{Origin: "image", StartX: 100, EndX: 110}, want: None},
		{name: "exactly threshold", drag: Drag{Origin: "image", StartX: 150, EndX: 100}, want: None},
		{name: "other surface", drag: Drag{Origin: "caption", StartX: 0, EndX: 500}, want: None},
		{name: "no origin", drag: Drag{StartX: 500, EndX: 0}, want: None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Interpret(tt.drag))
		})
	}
}
