package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AppVersion(t *testing.T) {
	defer func(tag, v string) {
		GitTag, Version = tag, v
	}(GitTag, Version)

	GitTag, Version = "", ""
	require.Equal(t, UnknownVersion, AppVersion())

	Version = "1.2.0"
	require.Equal(t, "1.2.0", AppVersion())

	GitTag = "v1.2.1"
	require.Equal(t, "v1.2.1", AppVersion())
}
