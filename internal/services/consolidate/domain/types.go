// Package domain holds the record shapes and rules for consolidating the
// repository inventory
package domain

// Owners table columns
const (
	ColRepo                    = "repo"
	ColLastCommitter           = "last_committer"
	ColLastCommitDate          = "last_commit_date"
	ColUpdatedAt               = "updated_at"
	ColPrimaryOwner            = "primary_owner"
	ColTeamOwnersAdminMaintain = "team_owners_admin_maintain"
	ColVisibility              = "visibility"
)

// Repositories (driver) table columns. Names are matched exactly
const (
	ColRepoName         = "Repo Name"
	ColPlatform         = "Platform"
	ColCICDPlatform     = "CI/CD Platform"
	ColHasTests         = "Has Tests"
	ColTestFramework    = "Test Framework"
	ColRepoURL          = "Repo URL"
	ColIsArchived       = "Is Archived"
	ColDriverCommitter  = "Last Committer"
	ColDriverCommitDate = "Last Commit Date"
)

// OwnerColumns lists the columns an owners table must carry
var OwnerColumns = []string{
	ColRepo, ColLastCommitter, ColLastCommitDate, ColUpdatedAt,
	ColPrimaryOwner, ColTeamOwnersAdminMaintain, ColVisibility,
}

// DriverColumns lists the columns a repositories table must carry
var DriverColumns = []string{
	ColRepoName, ColPlatform, ColCICDPlatform, ColHasTests, ColTestFramework,
	ColRepoURL, ColIsArchived, ColDriverCommitter, ColDriverCommitDate,
}

// MergedHeader is the output column order
var MergedHeader = []string{
	"repo", "last_committer", "last_commit_date", "updated_at", "primary_owner",
	"team_owners_admin_maintain", "visibility", "platform", "cicd", "has_tests",
	"test_setup", "repo_url", "is_archived",
}

// Row is a decoded table record addressed by column name
type Row interface {
	Get(col string) string
	Line() int
}

// OwnerRecord is one row of the owners table, kept as raw strings
type OwnerRecord struct {
	Repo                    string
	LastCommitter           string
	LastCommitDate          string
	UpdatedAt               string
	PrimaryOwner            string
	TeamOwnersAdminMaintain string
	Visibility              string
}

// OwnerFromRow decodes an owners row
func OwnerFromRow(r Row) OwnerRecord {
	return OwnerRecord{
		Repo:                    r.Get(ColRepo),
		LastCommitter:           r.Get(ColLastCommitter),
		LastCommitDate:          r.Get(ColLastCommitDate),
		UpdatedAt:               r.Get(ColUpdatedAt),
		PrimaryOwner:            r.Get(ColPrimaryOwner),
		TeamOwnersAdminMaintain: r.Get(ColTeamOwnersAdminMaintain),
		Visibility:              r.Get(ColVisibility),
	}
}

// DriverRecord is one row of the repositories table
type DriverRecord struct {
	RepoName       string
	Platform       string
	CICD           string
	HasTests       string
	TestFramework  string
	RepoURL        string
	IsArchived     string
	LastCommitter  string // used only when no owner matches
	LastCommitDate string // used only when no owner matches
}

// DriverFromRow decodes a repositories row
func DriverFromRow(r Row) DriverRecord {
	return DriverRecord{
		RepoName:       r.Get(ColRepoName),
		Platform:       r.Get(ColPlatform),
		CICD:           r.Get(ColCICDPlatform),
		HasTests:       r.Get(ColHasTests),
		TestFramework:  r.Get(ColTestFramework),
		RepoURL:        r.Get(ColRepoURL),
		IsArchived:     r.Get(ColIsArchived),
		LastCommitter:  r.Get(ColDriverCommitter),
		LastCommitDate: r.Get(ColDriverCommitDate),
	}
}

// MergedRecord is one output row
type MergedRecord struct {
	Repo                    string
	LastCommitter           string
	LastCommitDate          string
	UpdatedAt               string
	PrimaryOwner            string
	TeamOwnersAdminMaintain string
	Visibility              string
	Platform                string
	CICD                    string
	HasTests                string
	TestSetup               string
	RepoURL                 string
	IsArchived              string
}

// Values returns the fields in MergedHeader order
func (m MergedRecord) Values() []string {
	return []string{
		m.Repo, m.LastCommitter, m.LastCommitDate, m.UpdatedAt, m.PrimaryOwner,
		m.TeamOwnersAdminMaintain, m.Visibility, m.Platform, m.CICD, m.HasTests,
		m.TestSetup, m.RepoURL, m.IsArchived,
	}
}

// DatePolicy picks the comparison time for an owner row whose commit date
// does not parse
type DatePolicy string

const (
	// DatePolicyNow compares malformed dates as the current wall clock, so
	// they usually win. This is the historical behavior and the default
	DatePolicyNow DatePolicy = "now"

	// DatePolicyEpoch compares malformed dates as the zero time, so any
	// parseable date beats them
	DatePolicyEpoch DatePolicy = "epoch"
)

// Stats summarizes one consolidation run
type Stats struct {
	OwnerRows      int
	OwnerKeys      int
	Replaced       int // times a later row displaced the current winner
	MalformedDates int
	DriverRows     int
	Matched        int
	Unmatched      int
	Written        int
}

// Collapsed is the number of owner rows dropped by de-duplication
func (s Stats) Collapsed() int { return s.OwnerRows - s.OwnerKeys }
