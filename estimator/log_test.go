package estimator_test

import (
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	_ "github.com/elombardi2/DGtal/estimator"
)

func TestLogLevel_QuietByDefault(t *testing.T) {
	assert.Equal(t, logging.WARNING, logging.GetLevel("estimator"))
}
