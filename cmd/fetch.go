package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jjenkins/legiscan-relay/internal/service"
)

var (
	fetchID    uint32
	fetchState string
	fetchYear  int
)

// sessionNamesTarget derives names instead of relaying the session list
const sessionNamesTarget = "session-names"

var fetchTargets = map[string]service.Operation{
	"bill":             service.OpGetBill,
	"person":           service.OpGetPerson,
	"sessions":         service.OpGetSessionList,
	sessionNamesTarget: service.OpGetSessionList,
	"master-list":      service.OpGetMasterList,
	"master-list-raw":  service.OpGetMasterListRaw,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <target>",
	Short: "Fetch and validate one LegiScan response",
	Long: `Fetch performs a single LegiScan call, validates the response shape and
prints the original response text to stdout.

Targets: ` + strings.Join(fetchTargetNames(), ", ") + `

Examples:
  # Session list for the configured state
  ./legiscan-relay fetch sessions

  # Session names for California
  ./legiscan-relay fetch session-names --state CA

  # Bill detail
  ./legiscan-relay fetch bill --id 1234567`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().Uint32Var(&fetchID, "id", 0, "Bill, person or session id")
	fetchCmd.Flags().StringVarP(&fetchState, "state", "s", "", "Two-letter state code (default from config)")
	fetchCmd.Flags().IntVarP(&fetchYear, "year", "y", 0, "Year for master-list (default from config)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	target := args[0]
	op, ok := fetchTargets[target]
	if !ok {
		return fmt.Errorf("unknown target %q (want one of %s)", target, strings.Join(fetchTargetNames(), ", "))
	}

	cfg, logger, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	params := service.Params{ID: fetchID}
	switch op {
	case service.OpGetSessionList, service.OpGetMasterList:
		params.State = cfg.LegiScan.State
		if fetchState != "" {
			params.State = strings.ToUpper(fetchState)
		}
		if op == service.OpGetMasterList {
			params.Year = cfg.LegiScan.Year
			if fetchYear != 0 {
				params.Year = fetchYear
			}
		}
	case service.OpGetMasterListRaw:
		if params.ID == 0 {
			params.ID = cfg.LegiScan.SessionID
		}
	}

	client := service.NewLegiScanClient(cfg.LegiScan)
	raw, err := client.Fetch(ctx, op, params)
	if err != nil {
		return err
	}

	out, err := validateForTarget(service.NewValidator(), target, op, raw)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// validateForTarget checks raw and returns what should be printed
func validateForTarget(v *service.Validator, target string, op service.Operation, raw string) (string, error) {
	if target == sessionNamesTarget {
		names, err := v.SessionNames(raw)
		if err != nil {
			return "", err
		}
		return strings.Join(names, ", "), nil
	}

	shape, err := service.ShapeFor(op)
	if err != nil {
		return "", err
	}
	if _, err := v.Validate(shape, raw); err != nil {
		return "", err
	}
	return raw, nil
}

func fetchTargetNames() []string {
	names := make([]string, 0, len(fetchTargets))
	for name := range fetchTargets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
