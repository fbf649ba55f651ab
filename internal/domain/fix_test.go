package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/codeshift/internal/domain"
)

func TestFixReport_JSONShape(t *testing.T) {
	report := domain.FixReport{
		Output:  "return n % 2 == 0",
		Applied: []domain.AppliedRule{{Name: "parity-check", Explanation: "Fixed", Matches: 1}},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"output":"return n % 2 == 0","applied":[{"name":"parity-check","explanation":"Fixed","matches":1}]}`,
		string(data))
}
