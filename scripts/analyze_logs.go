package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalRequests       int
	FailedRequests      int
	UnauthorizedHits    int
	RecordsNotFound     int
	ValidationFailures  int
	PersistenceFailures int
	RouteActivity       map[string]int
	CriticalPatterns    map[string]int
}

var (
	requestRegex = regexp.MustCompile(`Request: (\w+) (\S+) from \S+ - Status: (\d+)`)
)

func main() {
	// Get today's date for log file names
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	// Initialize stats
	stats := &LogStats{
		RouteActivity:    make(map[string]int),
		CriticalPatterns: make(map[string]int),
	}

	// Analyze info logs (access log plus validation/not-found entries)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	// Analyze critical logs (persistence failures)
	analyzeCriticalLogs(filepath.Join(logDir, fmt.Sprintf("critical-%s.log", today)), stats)

	// Print report
	printReport(stats)
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		// Count requests per route and failed requests by status
		if match := requestRegex.FindStringSubmatch(line); match != nil {
			stats.TotalRequests++
			stats.RouteActivity[match[1]+" "+match[2]]++
			if match[3][0] == '4' || match[3][0] == '5' {
				stats.FailedRequests++
			}
			if match[3] == "401" {
				stats.UnauthorizedHits++
			}
			continue
		}

		// Count not-found lookups
		if strings.Contains(line, "No ") && strings.Contains(line, " found") {
			stats.RecordsNotFound++
		}

		// Count validation failures
		if strings.Contains(line, "Missing required fields") ||
			strings.Contains(line, "Invalid ") {
			stats.ValidationFailures++
		}
	}
}

func analyzeCriticalLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.PersistenceFailures++
		extractCriticalPattern(line, stats)
	}
}

func extractCriticalPattern(line string, stats *LogStats) {
	// Extract the main failure message after the file:line prefix
	parts := strings.SplitN(line, ": ", 3)
	if len(parts) > 2 {
		stats.CriticalPatterns[strings.TrimSpace(parts[2])]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Request Statistics:")
	fmt.Printf("   Total Requests: %d\n", stats.TotalRequests)
	fmt.Printf("   Failed Requests: %d\n", stats.FailedRequests)
	fmt.Printf("   Unauthorized Hits: %d\n", stats.UnauthorizedHits)

	fmt.Println("\n2. Application Statistics:")
	fmt.Printf("   Records Not Found: %d\n", stats.RecordsNotFound)
	fmt.Printf("   Validation Failures: %d\n", stats.ValidationFailures)

	fmt.Println("\n3. Persistence Failures:")
	fmt.Printf("   Total Critical Entries: %d\n", stats.PersistenceFailures)

	fmt.Println("\n4. Most Active Routes:")
	printTopRoutes(stats.RouteActivity, 5)

	fmt.Println("\n5. Most Common Critical Failures:")
	printTopCritical(stats.CriticalPatterns, 5)
}

func printTopRoutes(routes map[string]int, limit int) {
	type routeActivity struct {
		route string
		count int
	}

	var activities []routeActivity
	for route, count := range routes {
		activities = append(activities, routeActivity{route, count})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].count > activities[j].count
	})

	for i, activity := range activities {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d requests\n", activity.route, activity.count)
	}
}

func printTopCritical(failures map[string]int, limit int) {
	type failureCount struct {
		message string
		count   int
	}

	var failureList []failureCount
	for message, count := range failures {
		failureList = append(failureList, failureCount{message, count})
	}

	sort.Slice(failureList, func(i, j int) bool {
		return failureList[i].count > failureList[j].count
	})

	for i, failure := range failureList {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", failure.message, failure.count)
	}
}
