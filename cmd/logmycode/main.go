package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/logmycode/logmycode/internal/application/dto"
	"github.com/logmycode/logmycode/internal/client"
	"github.com/logmycode/logmycode/internal/scanner"
)

func main() {
	apiFlag := &cli.StringFlag{
		Name:    "api-url",
		Usage:   "base URL of the LogMyCode backend",
		Value:   "http://localhost:4001",
		Sources: cli.EnvVars("LOGMYCODE_API_URL"),
	}
	userFlag := &cli.StringFlag{
		Name:     "user",
		Usage:    "user identifier for stored summaries",
		Required: true,
		Sources:  cli.EnvVars("LOGMYCODE_USER"),
	}
	dateFlag := &cli.StringFlag{
		Name:  "date",
		Usage: "day to work with, formatted YYYY-MM-DD",
		Value: time.Now().Format("2006-01-02"),
	}

	cmd := &cli.Command{
		Name:  "logmycode",
		Usage: "Scan local git repositories and keep a daily work log",
		Commands: []*cli.Command{
			{
				Name:      "scan",
				Usage:     "Extract the day's commits from the given folders and generate a summary",
				ArgsUsage: "FOLDER [FOLDER...]",
				Flags: []cli.Flag{
					apiFlag,
					userFlag,
					dateFlag,
					&cli.StringFlag{
						Name:  "author",
						Usage: "author filter for git log; defaults to the first folder's git identity",
					},
					&cli.StringFlag{
						Name:  "template",
						Usage: "custom prompt instructions replacing the default format",
					},
					&cli.StringFlag{
						Name:  "notes",
						Usage: "manual activity log folded into the generated summary",
					},
				},
				Action: runScan,
			},
			{
				Name:   "summary",
				Usage:  "Print the stored summary for a day",
				Flags:  []cli.Flag{apiFlag, userFlag, dateFlag},
				Action: runSummary,
			},
			{
				Name:   "recent",
				Usage:  "Print the day's summary and the latest one before it",
				Flags:  []cli.Flag{apiFlag, userFlag, dateFlag},
				Action: runRecent,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func runScan(ctx context.Context, cmd *cli.Command) error {
	folders := cmd.Args().Slice()
	if len(folders) == 0 {
		folders = []string{"."}
	}
	date := cmd.String("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
	}

	author := cmd.String("author")
	if author == "" {
		detected, err := scanner.DetectAuthor(folders[0])
		if err != nil {
			return fmt.Errorf("cannot determine author, pass --author: %w", err)
		}
		author = detected
	}

	repos := scanner.New().Scan(ctx, folders, date, author)
	if len(repos) == 0 {
		fmt.Printf("No commits found for %s on %s.\n", author, date)
		return nil
	}

	payload := &dto.BulkCommitsRequest{
		UserID:    cmd.String("user"),
		Date:      date,
		Template:  cmd.String("template"),
		ManualLog: cmd.String("notes"),
	}
	for _, r := range repos {
		repo := dto.RepoPayload{Name: r.Name}
		for _, c := range r.Commits {
			repo.Commits = append(repo.Commits, dto.CommitPayload{
				Hash:      c.Hash,
				Message:   c.Message,
				Timestamp: c.Timestamp,
			})
		}
		payload.Repos = append(payload.Repos, repo)
	}

	resp, err := client.New(cmd.String("api-url")).PostCommits(ctx, payload)
	if err != nil {
		return err
	}

	fmt.Println(resp.Summary)
	return nil
}

func runSummary(ctx context.Context, cmd *cli.Command) error {
	resp, err := client.New(cmd.String("api-url")).DailySummary(ctx, cmd.String("user"), cmd.String("date"))
	if err != nil {
		return err
	}

	fmt.Println(resp.Summary)
	if len(resp.Repos) > 0 {
		fmt.Println()
		for _, repo := range resp.Repos {
			fmt.Printf("%s (%d commits)\n", repo.Name, len(repo.Commits))
			for _, c := range repo.Commits {
				fmt.Printf("  %s %s\n", shortHash(c.Hash), c.Message)
			}
		}
	}
	return nil
}

func runRecent(ctx context.Context, cmd *cli.Command) error {
	resp, err := client.New(cmd.String("api-url")).RecentSummaries(ctx, cmd.String("user"), cmd.String("date"))
	if err != nil {
		return err
	}

	printDigest("Today", resp.Today)
	fmt.Println()
	printDigest("Previous", resp.Yesterday)
	return nil
}

func printDigest(label string, d dto.SummaryDigest) {
	fmt.Printf("%s (%s, %d commits):\n", label, d.Date, d.TotalCommits)
	if d.Summary == nil {
		fmt.Println("  no summary stored")
		return
	}
	fmt.Println(*d.Summary)
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
