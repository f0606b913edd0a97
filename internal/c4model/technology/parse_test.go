package technology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "Go", []string{"Go"}},
		{"trimmed", "  Go  ", []string{"Go"}},
		{"commas", "Java, Spring", []string{"Java", "Spring"}},
		{"comma without space", "Java,Spring", []string{"Java", "Spring"}},
		{"and clause", "gRPC, REST and Kafka", []string{"gRPC", "REST", "Kafka"}},
		{"A clause", "JSON A HTTPS", []string{"JSON", "HTTPS"}},
		{"lowercase a is not a separator", "JSON a HTTPS", []string{"JSON a HTTPS"}},
		{"And is case sensitive", "JSON And HTTPS", []string{"JSON And HTTPS"}},
		{"duplicates kept", "Go, Go", []string{"Go", "Go"}},
		{"trailing comma", "Go,", []string{"Go", ""}},
		{"leading comma", ",Go", []string{"", "Go"}},
		{"multiple clauses", "Java and Spring MVC, JPA and Oracle", []string{"Java", "Spring MVC", "JPA", "Oracle"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	in := "Kafka and gRPC, REST A JSON"
	assert.Equal(t, Parse(in), Parse(in))
}
