// Command reporter drives the dashboard API from a terminal: sign in, list
// incidents, file a report, upload a photo.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"tikkeul/internal/client"
	"tikkeul/internal/domain"
	"tikkeul/internal/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &cli.App{
		Name:  "reporter",
		Usage: "report and browse workplace micro-incidents",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Value: "http://127.0.0.1:8000", EnvVars: []string{"TIKKEUL_SERVER"}},
			&cli.StringFlag{Name: "token-file", Value: defaultTokenPath(), EnvVars: []string{"TIKKEUL_TOKEN_FILE"}},
			&cli.StringFlag{Name: "log-level", Value: "warn"},
		},
		Before: func(c *cli.Context) error {
			return logger.Init("development", c.String("log-level"))
		},
		Commands: []*cli.Command{
			loginCmd(), signupCmd(), logoutCmd(),
			lookupsCmd(), incidentsCmd(), incidentCmd(),
			reportCmd(), uploadCmd(), dashboardCmd(),
		},
	}
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "tikkeul", "token")
}

func newClient(c *cli.Context) (*client.Client, error) {
	return client.New(c.String("server"), client.NewFileSession(c.String("token-file")))
}

func loginCmd() *cli.Command {
	return &cli.Command{
		Name:      "login",
		ArgsUsage: "USERNAME PASSWORD",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.ShowSubcommandHelp(c)
			}
			api, err := newClient(c)
			if err != nil {
				return err
			}
			return api.Login(c.Context, c.Args().Get(0), c.Args().Get(1))
		},
	}
}

func signupCmd() *cli.Command {
	return &cli.Command{
		Name:      "signup",
		ArgsUsage: "USERNAME PASSWORD CONFIRM",
		Action: func(c *cli.Context) error {
			api, err := newClient(c)
			if err != nil {
				return err
			}
			return api.Signup(c.Context, client.SignupForm{
				Username:        c.Args().Get(0),
				Password:        c.Args().Get(1),
				ConfirmPassword: c.Args().Get(2),
			})
		},
	}
}

func logoutCmd() *cli.Command {
	return &cli.Command{
		Name: "logout",
		Action: func(c *cli.Context) error {
			api, err := newClient(c)
			if err != nil {
				return err
			}
			api.Logout()
			return nil
		},
	}
}

func lookupsCmd() *cli.Command {
	return &cli.Command{
		Name:  "lookups",
		Usage: "print every selectable value of the report form",
		Action: func(c *cli.Context) error {
			api, err := newClient(c)
			if err != nil {
				return err
			}
			l := api.LoadLookups(c.Context)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()
			for _, f := range l.Factories {
				fmt.Fprintf(w, "factory\t%d\t%s\n", f.ID, f.Name)
			}
			printCategories(w, "threatType", l.ThreatTypes)
			printCategories(w, "workType", l.WorkTypes)
			printCategories(w, "ageRange", l.AgeRanges)
			printCategories(w, "experience", l.WorkExperienceRanges)
			printCategories(w, "industryLarge", l.IndustryLarge)
			printCategories(w, "industryMedium", l.IndustryMedium)
			for i, q := range l.Checks {
				fmt.Fprintf(w, "check\t%d\t%s\n", i+1, q)
			}
			return nil
		},
	}
}

func printCategories(w *tabwriter.Writer, kind string, cs []domain.Category) {
	for _, c := range cs {
		fmt.Fprintf(w, "%s\t%d\t%s\n", kind, c.ID, c)
	}
}

func incidentsCmd() *cli.Command {
	return &cli.Command{
		Name:  "incidents",
		Usage: "list incidents of a factory (the first one by default)",
		Flags: []cli.Flag{&cli.IntFlag{Name: "factory"}},
		Action: func(c *cli.Context) error {
			api, err := newClient(c)
			if err != nil {
				return err
			}
			factories := []domain.Factory{}
			if id := c.Int("factory"); id != 0 {
				f, err := api.Factory(c.Context, id)
				if err != nil {
					return err
				}
				factories = append(factories, f)
			} else if factories, err = api.Factories(c.Context); err != nil {
				return err
			}
			factory, incs, err := api.FactoryIncidents(c.Context, factories)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%d)\n", factory, len(incs))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()
			for _, inc := range incs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d (%s)\t%s\n",
					inc.ID, inc.Date.Korean(), inc.ThreatType, inc.ThreatLevel, inc.RiskTier(), inc.Worker.Name)
			}
			return nil
		},
	}
}

func incidentCmd() *cli.Command {
	return &cli.Command{
		Name:      "incident",
		ArgsUsage: "ID",
		Action: func(c *cli.Context) error {
			id, err := strconv.Atoi(c.Args().First())
			if err != nil {
				return cli.ShowSubcommandHelp(c)
			}
			api, err := newClient(c)
			if err != nil {
				return err
			}
			inc, err := api.Incident(c.Context, id)
			if errors.Is(err, client.ErrNotFound) {
				return fmt.Errorf("incident %d not found", id)
			}
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()
			for _, row := range inc.RelatedInfo() {
				fmt.Fprintf(w, "%s\t%s\n", row.Label, row.Value)
			}
			return nil
		},
	}
}

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "file an incident report",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.IntFlag{Name: "age-range", Required: true},
			&cli.StringFlag{Name: "sex", Required: true},
			&cli.IntFlag{Name: "experience", Required: true},
			&cli.IntFlag{Name: "industry-large"},
			&cli.IntFlag{Name: "industry-medium"},
			&cli.IntFlag{Name: "threat-type", Required: true},
			&cli.IntFlag{Name: "level", Required: true},
			&cli.IntFlag{Name: "work-type", Required: true},
			&cli.IntFlag{Name: "factory"},
			&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD"},
			&cli.StringFlag{Name: "description"},
			&cli.StringSliceFlag{Name: "check", Usage: "QUESTION=true|false, once per checklist question"},
			&cli.StringFlag{Name: "image", Usage: "photo to upload and attach"},
		},
		Action: func(c *cli.Context) error {
			api, err := newClient(c)
			if err != nil {
				return err
			}
			form := client.NewReportForm(api.LoadLookups(c.Context))
			form.WorkerName = c.String("name")
			form.AgeRangeID = c.Int("age-range")
			form.Sex = c.String("sex")
			form.WorkExperienceRangeID = c.Int("experience")
			form.IndustryTypeLargeID = c.Int("industry-large")
			form.IndustryTypeMediumID = c.Int("industry-medium")
			form.ThreatTypeID = c.Int("threat-type")
			form.ThreatLevel = c.Int("level")
			form.WorkTypeID = c.Int("work-type")
			form.Description = c.String("description")
			if c.IsSet("factory") {
				form.FactoryID = c.Int("factory")
			}
			if s := c.String("date"); s != "" {
				if form.Date, err = domain.ParseDate(s); err != nil {
					return err
				}
			}
			for _, kv := range c.StringSlice("check") {
				q, v, ok := strings.Cut(kv, "=")
				answer, perr := strconv.ParseBool(v)
				if !ok || perr != nil || !form.Checklist.Answer(q, answer) {
					return fmt.Errorf("bad --check %q", kv)
				}
			}
			if path := c.String("image"); path != "" {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				if form.ImageURL, err = api.UploadImage(c.Context, filepath.Base(path), data, nil); err != nil {
					return cli.Exit(client.UploadMessage(err), 1)
				}
			}
			if err := form.Submit(c.Context, api); err != nil {
				return err
			}
			fmt.Println("미세산재가 신고되었습니다.")
			return nil
		},
	}
}

func uploadCmd() *cli.Command {
	return &cli.Command{
		Name:      "upload",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.ShowSubcommandHelp(c)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			api, err := newClient(c)
			if err != nil {
				return err
			}
			url, err := api.UploadImage(c.Context, filepath.Base(path), data, func(p float64) {
				fmt.Fprintf(os.Stderr, "\r%3.0f%%", p*100)
			})
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return cli.Exit(client.UploadMessage(err), 1)
			}
			fmt.Println(url)
			return nil
		},
	}
}

func dashboardCmd() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "print chart data",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "factory"},
			&cli.StringFlag{Name: "from", Usage: "YYYY-MM-DD"},
			&cli.StringFlag{Name: "to", Usage: "YYYY-MM-DD"},
		},
		Action: func(c *cli.Context) error {
			var filter domain.IncidentFilter
			if c.IsSet("factory") {
				id := c.Int("factory")
				filter.FactoryID = &id
			}
			for name, dst := range map[string]**domain.Date{"from": &filter.From, "to": &filter.To} {
				if s := c.String(name); s != "" {
					d, err := domain.ParseDate(s)
					if err != nil {
						return err
					}
					*dst = &d
				}
			}
			api, err := newClient(c)
			if err != nil {
				return err
			}
			sum, err := api.DashboardSummary(c.Context, filter)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintf(w, "total\t%d\n", sum.Total)
			for _, t := range sum.ThreatTypes {
				fmt.Fprintf(w, "threatType\t%s\t%d\n", t.Name, t.Count)
			}
			for _, d := range sum.DailyRisk {
				fmt.Fprintf(w, "risk\t%s\t%s\n", d.Date.Korean(), d.RiskIndex.StringFixed(2))
			}
			for _, s := range sum.WorkTypes {
				fmt.Fprintf(w, "workType\t%s\t%d\n", s.Name, s.Value)
			}
			for _, r := range sum.RiskTiers {
				fmt.Fprintf(w, "tier\t%s\t%d\n", r.Tier, r.Count)
			}
			return nil
		},
	}
}
