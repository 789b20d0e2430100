package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ExposesBusinessMetrics(t *testing.T) {
	FeedbackSubmissions.WithLabelValues("positive", "success").Inc()
	FeedbackValidationFailures.WithLabelValues("page").Inc()

	count, err := testutil.GatherAndCount(Registry,
		"docs_feedback_submissions_total",
		"docs_feedback_validation_failures_total",
	)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 2)
}

func TestFeedbackValidationFailures_PerField(t *testing.T) {
	before := testutil.ToFloat64(FeedbackValidationFailures.WithLabelValues("option"))

	FeedbackValidationFailures.WithLabelValues("option").Inc()
	FeedbackValidationFailures.WithLabelValues("option").Inc()

	assert.Equal(t, before+2, testutil.ToFloat64(FeedbackValidationFailures.WithLabelValues("option")))
}

func TestRegistry_IncludesRuntimeCollectors(t *testing.T) {
	families, err := Registry.Gather()
	require.NoError(t, err)

	var goMetrics int
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), "go_") {
			goMetrics++
		}
	}
	assert.Positive(t, goMetrics)
}

func TestMeasureDuration(t *testing.T) {
	start := time.Now().Add(-250 * time.Millisecond)

	assert.GreaterOrEqual(t, MeasureDuration(start), 0.25)
}
