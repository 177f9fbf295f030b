package common

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"cidash/pkg/api"
	"cidash/pkg/status"
	"cidash/pkg/view"
)

var (
	classIconMap map[api.StatusClass]string
)

func init() {
	classIconMap = map[api.StatusClass]string{
		api.ClassNotStarted: "◷",
		api.ClassRunning:    "●",
		api.ClassCancelled:  "ǁ",
		api.ClassSucceeded:  "✔",
		api.ClassFailed:     "✖",
	}
}

// PrintOptions defines print options
type PrintOptions struct {
	// Stale marks the view as the last known one.
	Stale bool
	// Err is the error that prevented a fresh view, if any.
	Err error
}

// PrintPipeline prints the pipeline view in the given writer, one block per stage.
func PrintPipeline(w io.Writer, v view.PipelineView, opts PrintOptions) {
	fmt.Fprintln(w)

	// Header
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", v.Name)
	fmt.Fprintf(tw, "PipelineID:\t%d\n", v.ID)
	fmt.Fprintf(tw, "Status:\t%s\n", v.StatusText)
	fmt.Fprintf(tw, "Stages:\t%d\n", len(v.Stages))
	fmt.Fprintf(tw, "Jobs:\t%d\n", v.JobCount())
	if opts.Stale {
		fmt.Fprintf(tw, "Stale:\tyes\n")
	}
	if opts.Err != nil {
		fmt.Fprintf(tw, "Error:\t%s\n", opts.Err)
	}
	tw.Flush()
	fmt.Fprintln(w)

	tw.Init(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STAGE\tSTATUS\tEXIT\tUPTIME\tNEEDED BY")
	for _, s := range v.Stages {
		fmt.Fprintf(tw, "%s stage %d\t\t\t\t\n", classIconMap[s.Class], s.Index+1)
		for i, j := range s.Jobs {
			prefix := "├"
			if i == len(s.Jobs)-1 {
				prefix = "└"
			}
			printJob(tw, j, prefix, names(v))
		}
	}
	tw.Flush()
}

func printJob(w io.Writer, j view.JobView, prefix string, names map[api.JobID]string) {
	children := make([]string, len(j.Children))
	for i, c := range j.Children {
		children[i] = names[c]
	}
	fmt.Fprintf(w, "%s %s %s\t%s\t%s\t%s\t%s\n", prefix, classIconMap[j.Class], j.Name, j.StatusText, exitCode(j.ExitCode), uptime(j.UptimeSecs), strings.Join(children, ", "))
}

func names(v view.PipelineView) map[api.JobID]string {
	m := make(map[api.JobID]string, v.JobCount())
	for _, s := range v.Stages {
		for _, j := range s.Jobs {
			m[j.ID] = j.Name
		}
	}
	return m
}

// PrintSummaries prints one line per pipeline with the class of each of its stages.
func PrintSummaries(w io.Writer, summaries []view.Summary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tSTAGES")
	for _, s := range summaries {
		stages := s.Error
		if stages == "" {
			icons := make([]string, len(s.Stages))
			for i, c := range s.Stages {
				icons[i] = classIconMap[c]
			}
			stages = strings.Join(icons, " → ")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s %s\t%s\n", s.ID, s.Name, classIconMap[s.Class], s.StatusText, stages)
	}
	tw.Flush()
}

// PrintJob prints the details of a job, output included.
func PrintJob(w io.Writer, j api.Job) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", j.Name)
	fmt.Fprintf(tw, "JobID:\t%d\n", j.ID)
	fmt.Fprintf(tw, "Pipeline:\t%s\n", pipelineRef(j.Pipeline))
	fmt.Fprintf(tw, "Status:\t%s %s\n", classIconMap[status.ClassifyJob(j)], j.Status)
	if j.Status.Complete() {
		fmt.Fprintf(tw, "Exit code:\t%s\n", exitCode(j.ExitCode))
	}
	fmt.Fprintf(tw, "Container:\t%s\n", j.ContainerID)
	fmt.Fprintf(tw, "Started:\t%s\n", date(j.HostStartTimeSecs))
	fmt.Fprintf(tw, "Uptime:\t%s\n", uptime(j.UptimeSecs))
	if j.Error != "" {
		fmt.Fprintf(tw, "Error:\t%s\n", j.Error)
	}
	tw.Flush()
	if j.Output != "" {
		fmt.Fprintln(w)
		fmt.Fprint(w, j.Output)
		if !strings.HasSuffix(j.Output, "\n") {
			fmt.Fprintln(w)
		}
	}
}

// PrintJobs prints one line per job with its class.
func PrintJobs(w io.Writer, jobs []api.Job) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPIPELINE\tSTATUS\tEXIT\tCONTAINER")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s %s\t%s\t%s\n", j.ID, j.Name, pipelineRef(j.Pipeline),
			classIconMap[status.ClassifyJob(j)], j.Status, exitCode(j.ExitCode), shortID(j.ContainerID))
	}
	tw.Flush()
}

func pipelineRef(p api.PipelineRef) string {
	if p.Name == "" {
		return fmt.Sprint(int64(p.ID))
	}
	return fmt.Sprintf("%s (%d)", p.Name, p.ID)
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

func exitCode(c *int) string {
	if c == nil {
		return ""
	}
	return fmt.Sprint(*c)
}

func date(secs float64) string {
	if secs == 0 {
		return ""
	}
	return time.Unix(0, int64(secs*float64(time.Second))).Format("2 Jan 2006 15:04:05.000")
}

func uptime(secs float64) string {
	if secs <= 0 {
		return ""
	}
	start := time.Unix(0, 0)
	end := start.Add(time.Duration(secs * float64(time.Second)))
	return duration(&start, &end)
}

func duration(start, end *time.Time) string {
	var d time.Duration
	if start == nil {
		return ""
	}
	if end == nil {
		d = time.Now().Sub(*start)
	} else {
		d = end.Sub(*start)
	}

	// Print
	if d.Seconds() <= 60.0 {
		return fmt.Sprintf("%0.0fs", d.Seconds())
	} else if d.Minutes() <= 60.0 {
		m := int64(d.Minutes())
		s := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%0.dm %0.0fs", m, s)
	} else {
		h := int64(d.Hours())
		m := int64(math.Mod(d.Minutes(), 60))
		s := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%0.dh %0.dm %0.0fs", h, m, s)
	}
}
