package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseView(t *testing.T) {
	tests := []struct {
		input   string
		want    View
		wantErr bool
	}{
		{input: "clusters", want: ViewClusters},
		{input: "", want: ViewClusters},
		{input: "Apps", want: ViewApplications},
		{input: "applications", want: ViewApplications},
		{input: "source", want: ViewSources},
		{input: "documentation", want: ViewDocumentation},
		{input: "pods", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseView(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProviders(t *testing.T) {
	providers := Providers(&stubClient{})
	for _, v := range Views {
		assert.Contains(t, providers, v)
		assert.NotEmpty(t, v.Title())
	}

	assert.True(t, ViewApplications.ShowsFluxNotice())
	assert.True(t, ViewSources.ShowsFluxNotice())
	assert.False(t, ViewClusters.ShowsFluxNotice())
}
