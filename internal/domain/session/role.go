package session

import "strings"

// NormalizeRole maps heterogeneous role strings to a canonical Role.
// Matching is by substring over the lowercased input with "_" and "-"
// separators stripped, in fixed priority order. Unmatched input is returned
// verbatim: downstream routing treats it as a job-seeker equivalent and
// HasRole falls back to exact comparison.
func NormalizeRole(raw string) Role {
	if raw == "" {
		return ""
	}

	folded := strings.ToLower(raw)
	folded = strings.ReplaceAll(folded, "_", "")
	folded = strings.ReplaceAll(folded, "-", "")

	switch {
	case strings.Contains(folded, "recruiter"):
		return RoleRecruiter
	case strings.Contains(folded, "jobseeker"):
		return RoleJobSeeker
	case strings.Contains(folded, "intern"):
		return RoleIntern
	case strings.Contains(folded, "admin"):
		return RoleAdmin
	default:
		return Role(raw)
	}
}

// Matches reports whether the stored role satisfies the required one.
// Comparison is case-insensitive with explicit alias handling: jobSeeker
// matches "jobseeker" and "job_seeker", admin matches "admin" and
// "administrator". Everything else requires an exact match.
func (r Role) Matches(required Role) bool {
	have := strings.ToLower(string(r))
	want := strings.ToLower(string(required))

	switch want {
	case "jobseeker", "job_seeker":
		return have == "jobseeker" || have == "job_seeker"
	case "admin":
		return have == "admin" || have == "administrator"
	default:
		return have == want
	}
}
