// Package classify maps backend failures onto the categories the dashboard
// and the creation workflow present differently. Matching is a best-effort
// heuristic over driver error codes and known message substrings; anything
// unrecognized falls back to Generic.
package classify

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
	"github.com/lib/pq"
)

type Category int

const (
	// Generic is the fallback; the raw message is shown for diagnosis.
	Generic Category = iota
	// TableMissing means the projects table has not been created yet.
	TableMissing
	// AccessDenied means a row-level-security policy rejected the caller.
	AccessDenied
	// BucketMissing means the object-storage bucket has not been provisioned.
	BucketMissing
)

func (c Category) String() string {
	switch c {
	case TableMissing:
		return "table_missing"
	case AccessDenied:
		return "access_denied"
	case BucketMissing:
		return "bucket_missing"
	default:
		return "generic"
	}
}

// Postgres error codes consulted before any substring matching.
const (
	pgUndefinedTable        = "42P01"
	pgInsufficientPrivilege = "42501"
)

// Substring tables are package vars so newly-worded backend errors can be
// added without touching the control flow. All matching is case-insensitive.
var (
	TableMissingSubstrings = []string{
		`relation "projects" does not exist`,
		`could not find the table 'public.projects' in the schema cache`,
	}

	AccessDeniedSubstrings = []string{
		"violates row-level security policy",
	}

	BucketMissingSubstrings = []string{
		"bucket not found",
		"no such bucket",
		"nosuchbucket",
	}
)

// Classify buckets err into one of the four categories. Priority follows the
// dashboard's needs: TableMissing, then AccessDenied, then BucketMissing,
// then Generic.
func Classify(err error) Category {
	if err == nil {
		return Generic
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUndefinedTable:
			return TableMissing
		case pgInsufficientPrivilege:
			return AccessDenied
		}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchBucket" {
		return BucketMissing
	}

	msg := strings.ToLower(err.Error())
	if matchesAny(msg, TableMissingSubstrings) {
		return TableMissing
	}
	if matchesAny(msg, AccessDeniedSubstrings) {
		return AccessDenied
	}
	if matchesAny(msg, BucketMissingSubstrings) {
		return BucketMissing
	}
	return Generic
}

func matchesAny(msg string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(msg, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

// Help returns the operator guidance shown for categories that need
// out-of-band setup rather than a code fix. Generic has none.
func Help(c Category) string {
	switch c {
	case TableMissing:
		return "The projects table is missing. Run the schema migrations " +
			"(the server does this at startup when DB_DSN has DDL rights), or " +
			"create the projects table and its owner policies manually."
	case AccessDenied:
		return "The database rejected the request under row-level security. " +
			"Grant the authenticated role select/insert/delete policies on the " +
			"projects table scoped to the owner column."
	case BucketMissing:
		return "The object-storage bucket does not exist. Create a public " +
			"bucket matching STORAGE_BUCKET and allow uploads under the " +
			"ownerId/projectId/ prefix."
	default:
		return ""
	}
}
