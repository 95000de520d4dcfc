// Package help carries the quick-start text printed by the quickstart
// command.
package help

const ColdstartYAML = `# pdf-outline-parser Quick Start

what_it_does: |
  Scans a directory of PDFs and writes one <stem>.json outline artifact per
  document: {"title": "...", "outline": [{"level","text","page"}, ...]}.
  Titles and headings come from font-size/boldness/position heuristics plus
  per-profile keyword rules; there is no semantic parsing.

commands:
  basic_run: |
    pdf-outline-parser ./input ./output

  flags_instead_of_args: |
    pdf-outline-parser --input-dir ./input --output-dir ./output

  sequential: |
    pdf-outline-parser --workers 1 ./input ./output

  resume_skipping_done_documents: |
    pdf-outline-parser --skip-existing ./input ./output

  inspect_one_document: |
    pdf-outline-parser inspect report.pdf

config_file: |
  Optional config.yaml (flags and positional args override it):
    input_dir: input
    output_dir: output
    workers: 4

profiles:
  - "form: application/government forms -> empty outline"
  - "pathway-flyer / rsvp-invite: at most one H1 banner heading, page 0"
  - "foundation: course material, fixed section-name keyword table"
  - "rfp: business documents, keyword-driven H1/H2/H3 leveling"
  - "generic: size/boldness/pattern rules only"

error_behavior:
  - "A document that fails to open still gets a {title: '', outline: []} artifact"
  - "Per-document failures never fail the run; exit code stays 0"
  - "Startup problems (bad config, unreadable input dir) exit 2"
`
