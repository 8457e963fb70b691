package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"tuniskill/internal/client"
	"tuniskill/internal/config"
	"tuniskill/internal/logger"
)

func main() {
	cfg := config.Load()

	baseURL := flag.String("api", cfg.APIBaseURL, "API base URL")
	search := flag.String("search", "", "search courses instead of listing all")
	timeout := flag.Duration("timeout", 10*time.Second, "per request timeout")
	flag.Parse()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	notifier := client.NewLogNotifier(log)
	api := client.New(*baseURL,
		client.WithLogger(log),
		client.WithNotifier(notifier),
		client.WithTimeout(*timeout),
	)
	api.Tracker().Subscribe(func(loading bool) {
		log.Debug("loading state changed", "loading", loading)
	})

	ctx := context.Background()

	// Both calls start together and fail independently, like the home page.
	var (
		g       errgroup.Group
		courses []client.Course
	)
	g.Go(func() error {
		if _, err := api.TestConnection(ctx); err != nil {
			return err
		}
		notifier.Success("Connected to TuniSkill API")
		return nil
	})
	g.Go(func() error {
		var (
			resp *client.APIResponse[[]client.Course]
			err  error
		)
		if *search != "" {
			resp, err = api.SearchCourses(ctx, *search)
		} else {
			resp, err = api.Courses(ctx)
		}
		if err != nil {
			return err
		}
		courses = resp.Data
		return nil
	})
	failed := g.Wait() != nil

	printCourses(os.Stdout, courses)
	if failed {
		log.Sync()
		os.Exit(1)
	}
}

func printCourses(w io.Writer, courses []client.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(w, "No courses available.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tINSTRUCTOR\tLEVEL\tPRICE\tRATING\tSTUDENTS\tFEATURED")
	for _, c := range courses {
		featured := ""
		if c.IsFeatured {
			featured = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.2f\t%.1f\t%d\t%s\n",
			c.ID, truncate(c.Title, 40), c.Instructor, c.Level, c.Price, c.Rating, c.Students, featured)
	}
	_ = tw.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
