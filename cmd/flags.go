package cmd

import (
	"strings"

	"github.com/chrisdamba/menucraft/internal/media"
	"github.com/spf13/cobra"
)

// The helpers below return nil for flags the user did not pass, so forms can
// tell "unset" apart from a zero value.

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func floatFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

// mediaFlag is like stringFlag but embeds local files as data URLs. URLs and
// data URLs pass through unchanged.
func mediaFlag(cmd *cobra.Command, name string) (*string, error) {
	v := stringFlag(cmd, name)
	if v == nil || *v == "" || isURL(*v) {
		return v, nil
	}
	src, _, err := media.FileDataURL(*v)
	if err != nil {
		return nil, err
	}
	return &src, nil
}

func isURL(s string) bool {
	for _, prefix := range []string{"http://", "https://", "data:"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
