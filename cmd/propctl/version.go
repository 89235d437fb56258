package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"bindprop/internal/version"
)

var (
	versionJSON    bool
	versionVerbose bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "print a JSON object instead of text")
	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "add commit, build date and Go runtime")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the propctl version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := buildFields(versionVerbose)
		if versionJSON {
			return writeVersionJSON(cmd.OutOrStdout(), fields)
		}
		writeVersionText(cmd.OutOrStdout(), fields)
		return nil
	},
}

type buildField struct {
	key   string
	value string
}

// buildFields lists the version first, then the build metadata when verbose.
func buildFields(verbose bool) []buildField {
	fields := []buildField{{"version", version.String()}}
	if !verbose {
		return fields
	}
	return append(fields,
		buildField{"commit", orUnknown(version.GitCommit)},
		buildField{"built", orUnknown(version.BuildDate)},
		buildField{"go", runtime.Version()},
	)
}

func writeVersionText(w io.Writer, fields []buildField) {
	fmt.Fprintf(w, "propctl %s\n", version.Colored())
	for _, f := range fields[1:] {
		fmt.Fprintf(w, "  %-7s %s\n", f.key+":", f.value)
	}
}

func writeVersionJSON(w io.Writer, fields []buildField) error {
	obj := make(map[string]string, len(fields)+1)
	obj["tool"] = "propctl"
	for _, f := range fields {
		obj[f.key] = f.value
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(obj)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
