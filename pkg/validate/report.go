package validate

// stageResult pairs a domain with its validator's findings, in stage order.
type stageResult struct {
	domain   string
	findings Findings
}

// aggregate merges per-domain findings into the final report, translating
// zero-based positions into source-file row numbers. Domain keys are disjoint
// by construction, so this is a straight merge with no conflict resolution.
func aggregate(results []stageResult, opts Options) []DomainReport {
	domains := make([]DomainReport, 0, len(results))
	for _, res := range results {
		dr := DomainReport{Domain: res.domain}
		// Emit kinds in the order the stage declared them so the report,
		// and the policy failure message, are deterministic.
		if stage, ok := StageByDomain(res.domain); ok {
			for _, k := range stage.Kinds {
				rows, found := res.findings[k.Kind]
				if !found {
					continue
				}
				dr.Defects = append(dr.Defects, buildDefect(k.Kind, rows, opts))
			}
		}
		domains = append(domains, dr)
	}
	return domains
}

// buildDefect converts a predicate's position list into a Defect with
// source-file row numbers. The count is simply the list length.
func buildDefect(kind string, rows []int, opts Options) Defect {
	fileRows := make([]int, len(rows))
	for i, pos := range rows {
		fileRows[i] = opts.FileRow(pos)
	}
	return Defect{Kind: kind, Count: len(fileRows), Rows: fileRows}
}
