package importer

// Window drops the first skip and last stop lines. Export formats wrap the
// tabular data in fixed-size banner and footer rows whose size is known per
// export type but not parseable structurally. Both counts index the original
// slice; when skip+stop covers everything the result is empty.
func Window(lines []string, skip, stop int) []string {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if i >= skip && i < len(lines)-stop {
			out = append(out, line)
		}
	}
	return out
}
