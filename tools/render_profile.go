package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"profile-engine/internal/model"
	"profile-engine/internal/usecase"
)

// Renders a profile JSON file to standalone resume or portfolio HTML
// without running the server. Handy for eyeballing template changes.
func main() {
	in := flag.String("in", "profile.json", "profile JSON file")
	out := flag.String("out", "out.html", "output HTML file")
	kind := flag.String("view", "resume", "resume or portfolio")
	tplDir := flag.String("templates", "templates", "templates directory")
	flag.Parse()

	b, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read profile: %v\n", err)
		os.Exit(2)
	}
	var profile model.Profile
	if err := json.Unmarshal(b, &profile); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}

	r := usecase.NewHTMLRenderer(*tplDir)
	var html string
	switch *kind {
	case "resume":
		html, err = r.ResumeHTML(usecase.BuildResumeView(profile, model.Customization{}))
	case "portfolio":
		html, err = r.PortfolioHTML(usecase.BuildPortfolioView(profile, model.Theme{}))
	default:
		fmt.Fprintf(os.Stderr, "unknown view %q\n", *kind)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	if err := os.WriteFile(*out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", *out)
}
