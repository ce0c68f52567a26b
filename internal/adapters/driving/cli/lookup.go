package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reaper-tools/readocs/internal/core/domain"
)

var (
	lookupClass string
	lookupJSON  bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [api] [name]",
	Short: "Look up a function or method by exact name",
	Long: `Resolves a single record from one of the reference corpora.

The api argument is one of: jsfx, reascript, reawrap.

JSFX names are case-sensitive. ReaScript names fall back to a
case-insensitive match when the exact name misses. ReaWrap methods
are addressed by class and method name, so --class is required:

  readocs lookup jsfx sin
  readocs lookup reascript TrackFX_GetParam
  readocs lookup reawrap add_fx_by_name --class Track`,
	Args: cobra.ExactArgs(2),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupClass, "class", "c", "", "owning class name (reawrap only)")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output the record as JSON")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	ctx := context.Background()
	res, err := queryService.Query(ctx, domain.QueryRequest{
		Corpus:    domain.Corpus(args[0]),
		Operation: domain.OpLookup,
		Name:      args[1],
		Class:     lookupClass,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Printf("No match for %q.\n", args[1])
			return nil
		}
		return fmt.Errorf("lookup failed: %w", err)
	}

	if lookupJSON {
		return outputRecordJSON(cmd, res.Record)
	}

	return outputRecord(cmd, res.Record)
}

func outputRecordJSON(cmd *cobra.Command, record any) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecord(cmd *cobra.Command, record any) error {
	switch r := record.(type) {
	case *domain.JSFXFunction:
		outputJSFXFunction(cmd, r)
	case *domain.ReaScriptFunction:
		outputReaScriptFunction(cmd, r)
	case *domain.ReaWrapMethod:
		outputReaWrapMethod(cmd, r)
	default:
		return outputRecordJSON(cmd, record)
	}
	return nil
}

func outputJSFXFunction(cmd *cobra.Command, fn *domain.JSFXFunction) {
	cmd.Printf("%s\n", fn.Name)
	if fn.Signature != "" {
		cmd.Printf("  Signature: %s\n", fn.Signature)
	}
	if fn.Category != "" {
		cmd.Printf("  Category:  %s\n", fn.Category)
	}
	if fn.Description != "" {
		cmd.Println()
		cmd.Printf("  %s\n", fn.Description)
	}
}

func outputReaScriptFunction(cmd *cobra.Command, fn *domain.ReaScriptFunction) {
	cmd.Printf("%s\n", fn.Name)
	if fn.Namespace != "" {
		cmd.Printf("  Namespace: %s\n", fn.Namespace)
	}
	if len(fn.AvailableIn) > 0 {
		cmd.Printf("  Available: %s\n", strings.Join(fn.AvailableIn, ", "))
	}
	if len(fn.Signatures) > 0 {
		cmd.Println("  Signatures:")
		for _, lang := range []string{"c", "eel2", "lua", "python"} {
			sig, ok := fn.Signatures[lang]
			if !ok {
				continue
			}
			cmd.Printf("    %-6s %s\n", lang+":", formatSignature(sig))
		}
	}
	if fn.Description != "" {
		cmd.Println()
		cmd.Printf("  %s\n", fn.Description)
	}
}

func outputReaWrapMethod(cmd *cobra.Command, m *domain.ReaWrapMethod) {
	cmd.Printf("%s.%s\n", m.Class, m.Name)
	if m.Signature != "" {
		cmd.Printf("  Signature: %s\n", m.Signature)
	}
	if m.Category != nil && *m.Category != "" {
		cmd.Printf("  Category:  %s\n", *m.Category)
	}
	if len(m.Parameters) > 0 {
		cmd.Println("  Parameters:")
		for _, p := range m.Parameters {
			line := p.Name
			if p.Type != "" {
				line += " (" + p.Type + ")"
			}
			if p.Description != "" {
				line += " - " + p.Description
			}
			cmd.Printf("    %s\n", line)
		}
	}
	if len(m.Returns) > 0 {
		cmd.Println("  Returns:")
		for _, r := range m.Returns {
			line := r.Type
			if r.Description != "" {
				line += " - " + r.Description
			}
			cmd.Printf("    %s\n", line)
		}
	}
	if m.Description != "" {
		cmd.Println()
		cmd.Printf("  %s\n", m.Description)
	}
}

func formatSignature(sig domain.ReaScriptSignature) string {
	var b strings.Builder
	if sig.ReturnType != nil && *sig.ReturnType != "" {
		b.WriteString(*sig.ReturnType)
		b.WriteString(" ")
	}
	b.WriteString(sig.Name)
	b.WriteString("(")
	for i, p := range sig.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		if p.Type != "" {
			b.WriteString(p.Type)
			b.WriteString(" ")
		}
		b.WriteString(p.Name)
	}
	b.WriteString(")")
	return b.String()
}
