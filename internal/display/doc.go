// Package display renders search results for the terminal.
//
// A Renderer turns the ordered []models.MatchRecord produced by package search
// into one of four views:
//
//   - plain: "File:" / "Line N:" pairs, one per match
//   - table: a summary table with one column per configured summary column,
//     followed by a detail section with each match shown under its own file's header
//   - markdown: the table view as GitHub-flavoured markdown
//   - html: the markdown view converted to an HTML fragment
//
// Every view prints the match count first. An empty result prints only
// "No matches found.".
//
//	r := display.NewRenderer(os.Stdout, display.Options{
//	    Format:         config.FormatTable,
//	    SummaryColumns: []string{"Name", "Amount"},
//	})
//	if err := r.Render(result.Matches); err != nil {
//	    return err
//	}
//
// The package also carries the scan progress indicator and the warning block
// printed when files had to be skipped.
package display
