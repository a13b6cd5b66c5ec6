package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"draftlens/internal/conflict"
	"draftlens/internal/engine"
	"draftlens/internal/ingest"
	"draftlens/internal/pipeline"
	"draftlens/internal/store"
	"draftlens/internal/workspace"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 3 {
		usage()
	}

	switch os.Args[1] {
	case "analyze":
		runAnalyze(os.Args[2])
	case "optimize":
		runOptimize(os.Args[2])
	case "resolve":
		runResolve(os.Args[2])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: draftlens analyze <file> | optimize <file> | resolve <conflicts.json>")
	os.Exit(2)
}

func runAnalyze(path string) {
	base, err := workspace.EnsureDefault()
	if err != nil {
		log.Fatalf("workspace initialization failed: %v", err)
	}
	settings, err := workspace.LoadSettings(base)
	if err != nil {
		log.Fatalf("load settings failed: %v", err)
	}

	parsed, err := ingest.ParseFile(path)
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}

	eng := engine.New()
	dbPath := workspace.CacheDBPath(base)
	hash := eng.ContentHash(parsed.Text)

	result, err := store.LoadResult(dbPath, hash)
	if err != nil {
		log.Fatalf("cache lookup failed: %v", err)
	}
	if result == nil {
		r := eng.AnalyzeText(parsed.Text)
		result = &r
		if err := store.SaveResult(dbPath, r); err != nil {
			log.Fatalf("cache store failed: %v", err)
		}
	}

	var segments []pipeline.Result
	if result.WordCount > settings.SegmentWords {
		segments = eng.AnalyzeSegmented(parsed.Text, settings.SegmentWords, settings.OverlapWords, settings.Workers)
	}

	report := workspace.Report{
		Title:       parsed.Title,
		SourcePath:  parsed.SourcePath,
		ContentHash: hash,
		Analysis:    result,
		Segments:    segments,
	}
	if _, err := workspace.WriteReport(base, report); err != nil {
		log.Fatalf("write report failed: %v", err)
	}

	emit(report)
}

func runOptimize(path string) {
	base, err := workspace.EnsureDefault()
	if err != nil {
		log.Fatalf("workspace initialization failed: %v", err)
	}

	parsed, err := ingest.ParseFile(path)
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}

	eng := engine.New()
	suggestions := eng.OptimizeText(parsed.Text)
	hash := eng.ContentHash(parsed.Text)
	if err := store.SaveSuggestions(workspace.CacheDBPath(base), hash, suggestions); err != nil {
		log.Fatalf("cache store failed: %v", err)
	}

	emit(workspace.Report{
		Title:       parsed.Title,
		SourcePath:  parsed.SourcePath,
		ContentHash: hash,
		Suggestions: suggestions,
	})
}

func runResolve(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read conflicts failed: %v", err)
	}
	var conflicts []conflict.Conflict
	if err := json.Unmarshal(raw, &conflicts); err != nil {
		log.Fatalf("parse conflicts failed: %v", err)
	}

	emit(engine.New().ResolveConflicts(conflicts))
}

func emit(v any) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("marshal output failed: %v", err)
	}
	fmt.Println(string(raw))
}
