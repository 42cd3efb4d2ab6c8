package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"mod-compat/core/config"
	"mod-compat/core/logger"
	"mod-compat/core/plugin"
	"mod-compat/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reconcileClientPath string
	reconcileLobbyPath  string
	reconcileCategory   string
	reconcileJSON       bool
)

// reconcileCmd diffs a local inventory against saved lobby metadata.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Diff a local plugin inventory against lobby metadata",
	Long: `Reads a client inventory and a lobby's metadata from JSON files and prints the
compatibility diff, its summary and the join decision.

Examples:
  # Full report
  reconcile --client inventory.json --lobby lobby.json

  # Only the plugins that block joining, as JSON
  reconcile --client inventory.json --lobby lobby.json --category incompatible --json`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileClientPath, "client", "", "Path to the client inventory JSON")
	reconcileCmd.Flags().StringVar(&reconcileLobbyPath, "lobby", "", "Path to the lobby metadata JSON")
	reconcileCmd.Flags().StringVar(&reconcileCategory, "category", "all", "Entries to show: all, compatible, incompatible, unknown")
	reconcileCmd.Flags().BoolVar(&reconcileJSON, "json", false, "Print the diff as JSON")
	_ = reconcileCmd.MarkFlagRequired("client")
	_ = reconcileCmd.MarkFlagRequired("lobby")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	category, err := reconcile.ParseCategory(reconcileCategory)
	if err != nil {
		return err
	}
	client, err := loadInventory(reconcileClientPath)
	if err != nil {
		return err
	}
	metadata, err := loadMetadata(reconcileLobbyPath)
	if err != nil {
		return err
	}
	reg, err := registryFrom(client)
	if err != nil {
		return err
	}

	diff := reconcile.NewReconciler(reg, nil, nil).DiffMetadata(metadata)
	if diff.ParseError != nil {
		l.Warn("Lobby inventory is malformed", zap.Error(diff.ParseError))
	}

	out := cmd.OutOrStdout()
	if reconcileJSON {
		return writeDiffJSON(out, diff, category)
	}
	printDiff(out, diff, category)

	summary := diff.Summarize()
	l.Info("Reconciliation completed",
		zap.String("state", string(summary.State)),
		zap.Int("total", summary.Total),
		zap.Int("incompatible", summary.Total-summary.Compatible-summary.Unknown),
	)
	return nil
}

func writeDiffJSON(w io.Writer, diff *reconcile.LobbyDiff, category reconcile.Category) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Summary reconcile.Summary     `json:"summary"`
		Entries []reconcile.DiffEntry `json:"entries"`
	}{diff.Summarize(), diff.Filter(category)})
}

func printDiff(w io.Writer, diff *reconcile.LobbyDiff, category reconcile.Category) {
	summary := diff.Summarize()

	fmt.Fprintln(w, "\n=== Lobby Compatibility ===")
	fmt.Fprintf(w, "State: %s\n", summary.State)
	if !diff.Published {
		fmt.Fprintln(w, "Lobby published no plugin inventory")
	}
	fmt.Fprintf(w, "Compatible: %d\n", summary.Compatible)
	fmt.Fprintf(w, "Server Missing: %d\n", summary.ServerMissing)
	fmt.Fprintf(w, "Client Missing: %d\n", summary.ClientMissing)
	fmt.Fprintf(w, "Version Mismatch: %d\n", summary.Mismatches)
	fmt.Fprintf(w, "Unknown: %d\n", summary.Unknown)
	fmt.Fprintf(w, "Joinable: %t\n", !diff.RequiresMissingPlugins())

	entries := diff.Filter(category)
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "\n--- %s ---\n", category)
	for _, e := range entries {
		fmt.Fprintf(w, "%-40s %-22s client=%s server=%s\n", e.GUID, e.Result, versionOrDash(e.ClientVersion), versionOrDash(e.ServerVersion))
	}
}

func versionOrDash(v *plugin.Version) string {
	if v == nil {
		return "-"
	}
	return v.String()
}
