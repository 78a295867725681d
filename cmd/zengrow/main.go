// Package main implements the zengrow CLI for manual operations against the
// zengrowd HTTP server.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	// serverURL is the base URL for the zengrowd HTTP server
	serverURL string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zengrow",
	Short: "CLI for zengrowd server operations",
	Long: `zengrow is a command-line interface for the zengrowd productivity daemon.
It provides commands for managing tasks, checking the daily summary, and
talking to the schedule assistant.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8420", "zengrowd server URL")
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(askCmd)

	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksAddCmd)
	tasksAddCmd.Flags().StringVar(&taskPriority, "priority", "medium", "task priority (low|medium|high)")
	tasksAddCmd.Flags().IntVar(&taskEstimate, "estimate", 0, "estimated minutes")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check zengrowd server health",
	RunE:  runHealth,
}

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	RunE:  runTasksList,
}

var (
	taskPriority string
	taskEstimate int
)

var tasksAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTasksAdd,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show today's productivity summary",
	RunE:  runSummary,
}

var askCmd = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Ask the schedule assistant to plan your day",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

// Task mirrors the server's task representation.
type Task struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Completed        bool   `json:"completed"`
	Priority         string `json:"priority"`
	EstimatedMinutes int    `json:"estimated_minutes,omitempty"`
}

// Summary mirrors the server's daily digest.
type Summary struct {
	Date           string   `json:"date"`
	TasksCompleted int      `json:"tasks_completed"`
	FocusMinutes   int      `json:"focus_minutes"`
	MindfulBreaks  int      `json:"mindful_breaks"`
	Insights       []string `json:"insights"`
	Suggestions    []string `json:"suggestions"`
}

// HealthResponse mirrors internal/httpapi HealthResponse.
type HealthResponse struct {
	Status string `json:"status"`
}

func runHealth(cmd *cobra.Command, args []string) error {
	var resp HealthResponse
	if err := getJSON("/health", &resp); err != nil {
		return err
	}
	fmt.Printf("Server Status: %s\n", resp.Status)
	return nil
}

func runTasksList(cmd *cobra.Command, args []string) error {
	var tasks []Task
	if err := getJSON("/api/v1/tasks", &tasks); err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %-8s %s (%s)\n", mark, t.Priority, t.Title, t.ID)
	}
	return nil
}

func runTasksAdd(cmd *cobra.Command, args []string) error {
	req := map[string]any{
		"title":             strings.Join(args, " "),
		"priority":          taskPriority,
		"estimated_minutes": taskEstimate,
	}
	var created Task
	if err := postJSON("/api/v1/tasks", req, &created); err != nil {
		return err
	}
	fmt.Printf("Created task %s: %s\n", created.ID, created.Title)
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	var s Summary
	if err := getJSON("/api/v1/summary", &s); err != nil {
		return err
	}
	fmt.Printf("Summary for %s\n", s.Date)
	fmt.Printf("  Tasks completed: %d\n", s.TasksCompleted)
	fmt.Printf("  Focus minutes:   %d\n", s.FocusMinutes)
	fmt.Printf("  Mindful breaks:  %d\n", s.MindfulBreaks)
	fmt.Println("Insights:")
	for _, line := range s.Insights {
		fmt.Printf("  - %s\n", line)
	}
	fmt.Println("Suggestions:")
	for _, line := range s.Suggestions {
		fmt.Printf("  - %s\n", line)
	}
	return nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	req := map[string]any{
		"prompt": strings.Join(args, " "),
		"action": "generate_schedule",
	}
	var result struct {
		Schedule struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Items       []struct {
				Time     string `json:"time"`
				EndTime  string `json:"endTime"`
				Activity string `json:"activity"`
			} `json:"items"`
		} `json:"schedule"`
		ScheduleID string `json:"schedule_id"`
		Message    string `json:"message"`
	}
	if err := postJSON("/api/v1/assistant", req, &result); err != nil {
		return err
	}

	fmt.Printf("%s\n%s\n\n", result.Schedule.Title, result.Schedule.Description)
	for _, item := range result.Schedule.Items {
		fmt.Printf("  %s-%s  %s\n", item.Time, item.EndTime, item.Activity)
	}
	if result.ScheduleID != "" {
		fmt.Printf("\nSchedule id: %s\n", result.ScheduleID)
	}
	return nil
}

func getJSON(path string, out any) error {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(serverURL + path)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", serverURL, err)
	}
	defer resp.Body.Close()
	return decodeResponse(resp, out)
}

func postJSON(path string, body, out any) error {
	reqJSON, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	client := &http.Client{Timeout: 120 * time.Second}
	resp, err := client.Post(serverURL+path, "application/json", bytes.NewReader(reqJSON))
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", serverURL, err)
	}
	defer resp.Body.Close()
	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("server returned status %d (failed to read response body: %w)", resp.StatusCode, readErr)
		}
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
