package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go-payroll/internal/salaryclient"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errCallsFailed = errors.New("one or more requests failed")

type cli struct {
	logger  *zap.Logger
	out     io.Writer
	baseURL string
	token   string
	timeout time.Duration
}

func (c *cli) client() *salaryclient.Client {
	return salaryclient.New(c.baseURL, c.token, salaryclient.WithHTTPClient(&http.Client{Timeout: c.timeout}))
}

// notify reports one failed call and keeps going.
func (c *cli) notify(step string, err error) {
	var vErr *salaryclient.ValidationError
	var apiErr *salaryclient.APIError
	switch {
	case errors.As(err, &vErr):
		c.logger.Error("not sent: invalid input",
			zap.String("step", step),
			zap.String("field", vErr.Field),
			zap.String("reason", vErr.Message),
		)
	case errors.As(err, &apiErr):
		c.logger.Error("request rejected",
			zap.String("step", step),
			zap.Int("status", apiErr.Status),
			zap.String("code", apiErr.Code),
			zap.String("message", apiErr.Message),
		)
	default:
		c.logger.Error("request failed", zap.String("step", step), zap.Error(err))
	}
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// finish prints the result of a single call or reports its failure.
func (c *cli) finish(step string, v any, err error) error {
	if err != nil {
		c.notify(step, err)
		return errCallsFailed
	}
	if v == nil {
		c.logger.Info("done", zap.String("step", step))
		return nil
	}
	return c.print(v)
}

func newRootCommand(logger *zap.Logger, out io.Writer) *cobra.Command {
	c := &cli{logger: logger, out: out}

	root := &cobra.Command{
		Use:           "salaryadmin",
		Short:         "Manage employee salary structures and components",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&c.baseURL, "url", envOr("SALARY_API_URL", "http://localhost:3000/api/v1"), "API base URL")
	root.PersistentFlags().StringVar(&c.token, "token", os.Getenv("SALARY_API_TOKEN"), "bearer token")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 15*time.Second, "per-request timeout")

	root.AddCommand(
		c.showCommand(),
		c.meCommand(),
		c.listCommand(),
		c.setStructureCommand(),
		c.addComponentCommand(),
		c.updateComponentCommand(),
		c.deleteComponentCommand(),
		c.applyCommand(),
	)
	return root
}

func (c *cli) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show EMPLOYEE_ID",
		Short: "Show an employee's structure and components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client().GetStructure(cmd.Context(), args[0])
			return c.finish("show", resp, err)
		},
	}
}

func (c *cli) meCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the caller's own salary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client().GetMine(cmd.Context())
			return c.finish("me", resp, err)
		},
	}
}

func (c *cli) listCommand() *cobra.Command {
	var page, pageSize int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List salary structures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, meta, err := c.client().List(cmd.Context(), page, pageSize)
			return c.finish("list", map[string]any{"items": items, "meta": meta}, err)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "items per page")
	return cmd
}

func (c *cli) setStructureCommand() *cobra.Command {
	var form salaryclient.StructureForm
	cmd := &cobra.Command{
		Use:   "set-structure EMPLOYEE_ID",
		Short: "Create or overwrite an employee's salary structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.client().SaveStructure(cmd.Context(), args[0], form)
			return c.finish("set-structure", resp, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.MonthlyWage, "monthly-wage", "", "monthly wage (required)")
	f.StringVar(&form.WorkingDaysPerWeek, "working-days", "", "working days per week, 1-7")
	f.StringVar(&form.BreakHours, "break-hours", "", "daily break hours")
	f.StringVar(&form.PFEmployeeRate, "pf-employee-rate", "", "PF employee rate in percent")
	f.StringVar(&form.PFEmployerRate, "pf-employer-rate", "", "PF employer rate in percent")
	f.StringVar(&form.ProfessionalTaxOverride, "professional-tax", "", "professional tax override")
	return cmd
}

func (c *cli) addComponentCommand() *cobra.Command {
	var form salaryclient.ComponentForm
	var key string
	cmd := &cobra.Command{
		Use:   "add-component EMPLOYEE_ID",
		Short: "Add an earning or deduction line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				key = uuid.NewString()
			}
			resp, err := c.client().AddComponent(cmd.Context(), args[0], form, key)
			return c.finish("add-component", resp, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.Name, "name", "", "component name (required)")
	f.StringVar(&form.ComputationType, "type", salaryclient.ComputationFixed, "fixed or percentage")
	f.StringVar(&form.Value, "value", "", "amount, or percent of basic wage (required)")
	f.BoolVar(&form.IsDeduction, "deduction", false, "subtract from gross instead of adding")
	f.StringVar(&key, "idempotency-key", "", "reuse to make a retried add safe (default random)")
	return cmd
}

func (c *cli) updateComponentCommand() *cobra.Command {
	var name, computationType, value string
	var deduction bool
	cmd := &cobra.Command{
		Use:   "update-component EMPLOYEE_ID COMPONENT_ID",
		Short: "Change the given fields of a component",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch salaryclient.ComponentPatch
			f := cmd.Flags()
			if f.Changed("name") {
				patch.Name = &name
			}
			if f.Changed("type") {
				patch.ComputationType = &computationType
			}
			if f.Changed("value") {
				patch.Value = &value
			}
			if f.Changed("deduction") {
				patch.IsDeduction = &deduction
			}
			resp, err := c.client().UpdateComponent(cmd.Context(), args[0], args[1], patch)
			return c.finish("update-component", resp, err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "name", "", "component name")
	f.StringVar(&computationType, "type", "", "fixed or percentage")
	f.StringVar(&value, "value", "", "amount or percent")
	f.BoolVar(&deduction, "deduction", false, "mark as deduction")
	return cmd
}

func (c *cli) deleteComponentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-component EMPLOYEE_ID COMPONENT_ID",
		Short: "Remove a component line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.client().DeleteComponent(cmd.Context(), args[0], args[1])
			return c.finish("delete-component", nil, err)
		},
	}
}

func (c *cli) applyCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "apply -f FILE",
		Short: "Save a structure and add components from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				c.logger.Error("open apply file failed", zap.Error(err))
				return err
			}
			defer f.Close()

			doc, err := salaryclient.DecodeApplyDocument(f)
			if err != nil {
				c.notify("read "+file, err)
				return errCallsFailed
			}

			failed := 0
			for _, res := range c.client().Apply(cmd.Context(), doc) {
				if res.Err != nil {
					failed++
					c.notify(res.Step, res.Err)
					continue
				}
				c.logger.Info("done", zap.String("step", res.Step))
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d", errCallsFailed, failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML apply document")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
