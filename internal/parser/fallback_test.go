package parser_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralphreevencarandang/contract-reader/internal/parser"
	"github.com/ralphreevencarandang/contract-reader/internal/port"
)

// stubParser returns a scripted result and counts calls.
type stubParser struct {
	out   *port.ReviewOutput
	err   error
	calls int
}

func (s *stubParser) Review(ctx context.Context, input port.ReviewInput) (*port.ReviewOutput, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

func output(model string) *port.ReviewOutput {
	return &port.ReviewOutput{Raw: json.RawMessage(`{}`), ModelUsed: model}
}

func TestFallbackParser_PrimarySucceeds(t *testing.T) {
	primary := &stubParser{out: output("primary")}
	secondary := &stubParser{out: output("secondary")}

	f := parser.NewFallbackParser([]port.ReviewParser{primary, secondary}, []string{"openai", "claude"})

	result, err := f.Review(context.Background(), port.ReviewInput{Text: "contract"})

	require.NoError(t, err)
	assert.Equal(t, "primary", result.ModelUsed)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
}

func TestFallbackParser_PrimaryFails_SecondaryUsed(t *testing.T) {
	primary := &stubParser{err: fmt.Errorf("boom")}
	secondary := &stubParser{out: output("secondary")}

	f := parser.NewFallbackParser([]port.ReviewParser{primary, secondary}, []string{"openai", "claude"})

	result, err := f.Review(context.Background(), port.ReviewInput{Text: "contract"})

	require.NoError(t, err)
	assert.Equal(t, "secondary", result.ModelUsed)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestFallbackParser_RateLimitOpensCircuit(t *testing.T) {
	primary := &stubParser{err: parser.NewRateLimitError("openai", fmt.Errorf("429"), 60)}
	secondary := &stubParser{out: output("secondary")}

	f := parser.NewFallbackParser([]port.ReviewParser{primary, secondary}, []string{"openai", "claude"})

	// First call hits the primary, gets rate limited, falls through.
	result, err := f.Review(context.Background(), port.ReviewInput{Text: "contract"})
	require.NoError(t, err)
	assert.Equal(t, "secondary", result.ModelUsed)
	assert.Equal(t, 1, primary.calls)

	// Second call skips the primary entirely while its circuit is open.
	result, err = f.Review(context.Background(), port.ReviewInput{Text: "contract"})
	require.NoError(t, err)
	assert.Equal(t, "secondary", result.ModelUsed)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 2, secondary.calls)
}

func TestFallbackParser_AllFail(t *testing.T) {
	primary := &stubParser{err: fmt.Errorf("primary down")}
	secondary := &stubParser{err: fmt.Errorf("secondary down")}

	f := parser.NewFallbackParser([]port.ReviewParser{primary, secondary}, []string{"openai", "claude"})

	result, err := f.Review(context.Background(), port.ReviewInput{Text: "contract"})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all providers failed")
	assert.Contains(t, err.Error(), "secondary down")
}

func TestFallbackParser_AllRateLimited(t *testing.T) {
	primary := &stubParser{err: parser.NewRateLimitError("openai", fmt.Errorf("429"), 30)}
	secondary := &stubParser{err: parser.NewRateLimitError("claude", fmt.Errorf("429"), 90)}

	f := parser.NewFallbackParser([]port.ReviewParser{primary, secondary}, []string{"openai", "claude"})

	result, err := f.Review(context.Background(), port.ReviewInput{Text: "contract"})

	assert.Nil(t, result)
	require.Error(t, err)

	var rlErr *parser.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "all", rlErr.Provider)
}
