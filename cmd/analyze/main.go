package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"resume-checker/internal/pipeline"
	"resume-checker/internal/shared/config"
)

func main() {
	var (
		text    = flag.String("resume", "", "resume text (used as-is, skips parsing)")
		file    = flag.String("file", "", "path to a resume file (.txt, .pdf, .docx, .png, .jpg)")
		jd      = flag.String("jd", "", "job description text")
		jdFile  = flag.String("jd-file", "", "path to a job description text file")
		api     = flag.String("api", "", "API base URL (defaults to REMOTE_API_BASE_URL)")
		sample  = flag.Bool("sample", false, "analyze the built-in demo resume and job description")
		timeout = flag.Duration("timeout", 30*time.Second, "overall deadline for the run")
	)
	flag.Parse()

	cfg := config.Load()
	base := *api
	if base == "" {
		base = cfg.RemoteAPIBaseURL
	}

	in := pipeline.Input{ResumeText: *text, JobDescription: *jd}
	if *sample {
		in.ResumeText = pipeline.SampleResume
		in.JobDescription = pipeline.SampleJobDescription
	}
	if *jdFile != "" {
		data, err := os.ReadFile(*jdFile)
		if err != nil {
			log.Fatalf("read job description: %v", err)
		}
		in.JobDescription = string(data)
	}
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("read resume file: %v", err)
		}
		in.FileName = filepath.Base(*file)
		in.FileBytes = data
	}
	if in.ResumeText == "" && len(in.FileBytes) == 0 {
		fmt.Fprintln(os.Stderr, "Please provide a resume: -resume, -file, or -sample.")
		flag.Usage()
		os.Exit(2)
	}

	client := pipeline.NewClient(base)
	orch := pipeline.New(client, client)
	orch.ParseTimeout = cfg.ParseTimeout
	orch.EvaluateTimeout = cfg.AnalyzeTimeout
	orch.PreDelay = 300 * time.Millisecond
	orch.PostDelay = 400 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result := orch.Run(ctx, in)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Println(string(out))
}
