package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassificationSurvivesWrapping(t *testing.T) {
	base := errors.New("connection refused")

	err := fmt.Errorf("embed stage: %w", Transient(base))
	assert.True(t, IsTransient(err))
	assert.False(t, IsPermanent(err))
	assert.True(t, errors.Is(err, base))

	err = fmt.Errorf("parse stage: %w", Permanentf("corrupt PDF: %w", base))
	assert.True(t, IsPermanent(err))
	assert.False(t, IsTransient(err))
}

func TestNilPassthrough(t *testing.T) {
	assert.Nil(t, Transient(nil))
	assert.Nil(t, Permanent(nil))
	assert.False(t, IsTransient(nil))
	assert.False(t, IsPermanent(nil))
}
