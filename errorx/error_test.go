package errorx_test

import (
	"berquerant/excel-launcher-go/errorx"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	base := errors.New("base")
	err := errorx.Errorf(base, "load %s", "launcher.yml")
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "load launcher.yml base", err.Error())
}
