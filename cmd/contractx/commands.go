package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/contractx-go/internal/config"
	"github.com/ukaji3/contractx-go/pkg/contractx"
	"github.com/ukaji3/contractx-go/pkg/contractx/models"
	"github.com/ukaji3/contractx-go/pkg/contractx/output"
	"github.com/ukaji3/contractx-go/pkg/contractx/pdftable"
	"github.com/ukaji3/contractx-go/pkg/contractx/reference"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [input.pdf]",
		Short: "Extract fields from a PDF and match the contract against the reference workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, args, config.KeyPDF, config.KeyReference)
			if err != nil {
				return err
			}

			report, runErr := contractx.Run(cfg.PDF, cfg.Reference, cfg.Options(log))
			if report != nil {
				if err := emit(cmd, cfg, report); err != nil {
					return err
				}
			}
			if runErr != nil {
				return fmt.Errorf("run failed: %w", runErr)
			}
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [input.pdf]",
		Short: "Rebuild the tables of a PDF into the generated workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, args, config.KeyPDF)
			if err != nil {
				return err
			}

			opts := cfg.Options(log)
			src := pdftable.New(opts.Table, log)
			src.SkipValidation = opts.SkipValidation
			p := contractx.NewTablePipeline(src, opts)
			if err := p.Convert(cfg.PDF); err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.WorkbookPath())
			return nil
		},
	}
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [input.pdf]",
		Short: "Locate the contract number, total value and concept in a PDF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, args, config.KeyPDF)
			if err != nil {
				return err
			}

			fe, err := contractx.NewFieldExtractor(cfg.Options(log))
			if err != nil {
				return err
			}
			fields, err := fe.ExtractFields(cfg.PDF)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			return emit(cmd, cfg, &models.Report{Fields: fields})
		},
	}
}

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <contract>",
		Short: "List the reference invoice records of a contract number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contract, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid contract number %q: %w", args[0], err)
			}
			cfg, log, err := setup(cmd, nil, config.KeyReference)
			if err != nil {
				return err
			}

			wb, err := reference.Load(cfg.Reference, reference.Options{Logger: log})
			if err != nil {
				return err
			}
			records, err := wb.FindByContract(contract, cfg.Column)
			if err != nil {
				return err
			}
			return emit(cmd, cfg, &models.Report{
				Fields:  models.ExtractionResult{Source: cfg.Reference, Contract: &contract},
				Column:  cfg.Column,
				Records: records,
			})
		},
	}
}

// setup loads the configuration, takes the PDF path from the first positional
// argument when given, and checks that the required input files exist.
func setup(cmd *cobra.Command, args []string, required ...string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if len(args) > 0 {
		cfg.PDF = args[0]
	}
	if err := cfg.Require(required...); err != nil {
		return nil, zerolog.Nop(), err
	}

	log := cfg.Logger(cmd.ErrOrStderr())
	log.Debug().Stringer("config", cfg).Msg("configuration loaded")
	return cfg, log, nil
}

func emit(cmd *cobra.Command, cfg *config.Config, report *models.Report) error {
	if !cfg.JSON {
		return output.WriteSummary(cmd.OutOrStdout(), report)
	}
	data, err := output.ToJSON(report, cfg.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
