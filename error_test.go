package seqscrape_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/seqscrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := seqscrape.Errorf(seqscrape.EINVALID, "count %d must be positive", 0)

	assert.Equal(t, seqscrape.EINVALID, seqscrape.ErrorCode(err))
	assert.Equal(t, "count 0 must be positive", seqscrape.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch page 3: %w", seqscrape.Errorf(seqscrape.EUNAVAILABLE, "HTTP 404"))

	assert.Equal(t, seqscrape.EUNAVAILABLE, seqscrape.ErrorCode(err))
	assert.Equal(t, "HTTP 404", seqscrape.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, seqscrape.EINTERNAL, seqscrape.ErrorCode(err))
	assert.Equal(t, "Internal error.", seqscrape.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seqscrape.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, seqscrape.ErrorMessage(nil))
}
