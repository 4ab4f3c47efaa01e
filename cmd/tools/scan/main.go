// Command scan extracts contacts from a local folder of resumes and shows how
// they reconcile with the stored candidates. Nothing is written unless --apply
// is given.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"recruiter-assistant/internal/config"
	"recruiter-assistant/internal/cv"
	"recruiter-assistant/internal/scan"
	"recruiter-assistant/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var apply bool
	var workers int

	cmd := &cobra.Command{
		Use:          "scan <dir>",
		Short:        "Extract resume contacts from a directory and reconcile them with the database",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = cfg.ScanWorkers
			}

			log.Printf("Connecting to DB...")
			db, err := storage.NewDB(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to connect to db: %w", err)
			}
			defer db.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := db.Migrate(ctx); err != nil {
				return err
			}

			svc := scan.NewService(nil, cv.NewScanner(cv.NewDocReader(), workers), db)
			return run(ctx, svc, args[0], apply, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "write the changes to the database")
	cmd.Flags().IntVar(&workers, "workers", 0, "documents read in parallel (default SCAN_WORKERS)")
	return cmd
}

func run(ctx context.Context, svc *scan.Service, dir string, apply bool, out io.Writer) error {
	var res *scan.Result
	var err error
	if apply {
		res, err = svc.RunDir(ctx, dir)
	} else {
		res, err = svc.Preview(ctx, dir)
	}
	if err != nil {
		return err
	}

	report(out, res, apply)
	return nil
}

func report(w io.Writer, res *scan.Result, applied bool) {
	for _, c := range res.Extracted {
		if c.Error != "" {
			fmt.Fprintf(w, "!  %s: %s\n", c.SourceID, c.Error)
		}
	}
	for _, c := range res.Changes.Insert {
		fmt.Fprintf(w, "+  %-30s %-25s %-30s %s\n", c.SourceID, c.Name, c.Email, c.Phone)
	}
	for _, c := range res.Changes.Update {
		fmt.Fprintf(w, "~  %-30s %-25s %-30s %s\n", c.SourceID, c.Name, c.Email, c.Phone)
	}
	for _, c := range res.Changes.Delete {
		fmt.Fprintf(w, "-  %-30s %s\n", c.SourceID, c.Name)
	}

	verb := "would insert"
	if applied {
		verb = "inserted"
	}
	fmt.Fprintf(w, "%d documents: %s %d, update %d, delete %d (took %v)\n",
		len(res.Extracted), verb, len(res.Changes.Insert), len(res.Changes.Update), len(res.Changes.Delete), res.Duration)
}
