package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"siteforge/internal/analyzer"
	"siteforge/internal/config"
	"siteforge/internal/ir"
	"siteforge/internal/logging"
	"siteforge/internal/pipeline"
	"siteforge/internal/planner"
	"siteforge/internal/registry"
	"siteforge/internal/synth"
)

var (
	rootCmd = &cobra.Command{
		Use:   "siteforge",
		Short: "Natural-language UI section synthesis",
	}
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the config file")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(synthesizeCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(typesCmd)
}

func initLogger() (*zap.Logger, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logging.New(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return log, cfg, nil
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [description]",
	Short: "Turn a free-text section description into its requirement IR",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := analyzer.Analyze(strings.Join(args, " "))
		return printJSON(req)
	},
}

var (
	planIndustry string
	planPageType string
	planAudience string
)

var planCmd = &cobra.Command{
	Use:   "plan [brief]",
	Short: "Expand a page-level brief into an ordered section plan",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := initLogger()
		if err != nil {
			return err
		}
		industry := planIndustry
		if industry == "" {
			industry = cfg.Defaults.Industry
		}
		pageType := planPageType
		if pageType == "" {
			pageType = cfg.Defaults.PageType
		}
		intents := planner.Plan(ir.UserRequirement{
			Description:    strings.Join(args, " "),
			Industry:       industry,
			PageType:       pageType,
			TargetAudience: planAudience,
		})
		return printJSON(intents)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [brief]",
	Short: "Plan a page brief and synthesize every planned section",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, cfg, err := initLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		industry := planIndustry
		if industry == "" {
			industry = cfg.Defaults.Industry
		}
		reg := registry.New(nil, log)
		specs, err := pipeline.NewPage(reg, log).Generate(cmd.Context(), ir.UserRequirement{
			Description: strings.Join(args, " "),
			Industry:    industry,
			PageType:    cfg.Defaults.PageType,
		})
		if err != nil {
			return err
		}
		return printJSON(specs)
	},
}

var (
	synthName string
	synthOut  string
)

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize [description]",
	Short: "Generate component source for a section description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, cfg, err := initLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		req := analyzer.Analyze(strings.Join(args, " "))
		src := synth.SynthesizeSource(req, synthName)

		if synthOut == "" {
			fmt.Print(src)
			return nil
		}
		out := synthOut
		if cfg.Output.Dir != "" && !filepath.IsAbs(out) {
			if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
				return err
			}
			out = filepath.Join(cfg.Output.Dir, out)
		}
		if err := os.WriteFile(out, []byte(src), 0o644); err != nil {
			return fmt.Errorf("write component source: %w", err)
		}
		log.Info("component source written",
			zap.String("path", out),
			zap.Int("elements", len(req.Elements)))
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Handle one chat message through the generation pipeline",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, _, err := initLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		reg := registry.New(nil, log)
		reply := pipeline.NewChat(reg, log).Handle(context.Background(), strings.Join(args, " "))
		return printJSON(reply)
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the known section type keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := registry.New(nil, nil)
		for _, key := range reg.ListAllTypes() {
			fmt.Println(key)
		}
		return nil
	},
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func init() {
	planCmd.Flags().StringVar(&planIndustry, "industry", "", "Industry hint blended into the plan")
	planCmd.Flags().StringVar(&planPageType, "page-type", "", "Page type hint")
	planCmd.Flags().StringVar(&planAudience, "audience", "", "Target audience hint")

	generateCmd.Flags().StringVar(&planIndustry, "industry", "", "Industry hint blended into the plan")

	synthesizeCmd.Flags().StringVarP(&synthName, "name", "n", "GeneratedSection", "Component name")
	synthesizeCmd.Flags().StringVarP(&synthOut, "out", "o", "", "Write source to this file instead of stdout")
}
