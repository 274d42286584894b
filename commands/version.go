package commands

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build information, set at build time via ldflags.
var (
	Version    = "dev"
	CommitHash = "dev"
	BuildTime  = "unknown"
)

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

func (i VersionInfo) String() string {
	return fmt.Sprintf("jareflect %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
}

var versionJSON bool

// VersionCmd prints build information.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show jareflect version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := VersionInfo{
			Version:    Version,
			CommitHash: CommitHash,
			BuildTime:  BuildTime,
			GoVersion:  runtime.Version(),
			Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		}
		out := cmd.OutOrStdout()
		if versionJSON {
			b, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		}
		fmt.Fprintln(out, info.String())
		fmt.Fprintf(out, "Platform: %s\nGo: %s\n", info.Platform, info.GoVersion)
		return nil
	},
}

func init() {
	VersionCmd.Flags().BoolVarP(&versionJSON, "json-output", "j", false, "Output version info as JSON")
}
