package service

import "repoinventory/internal/services/consolidate/domain"

// Merge builds the output row for one driver record. owner is the matched
// owner record when found is true. Owner-sourced fields fall back to the
// driver's own committer and date, everything else owner-sourced to ""
func Merge(drv domain.DriverRecord, owner domain.OwnerRecord, found bool) domain.MergedRecord {
	m := domain.MergedRecord{
		Platform:   drv.Platform,
		CICD:       drv.CICD,
		HasTests:   drv.HasTests,
		TestSetup:  drv.TestFramework,
		RepoURL:    drv.RepoURL,
		IsArchived: drv.IsArchived,
	}
	if found {
		m.Repo = owner.Repo
		m.LastCommitter = owner.LastCommitter
		m.LastCommitDate = owner.LastCommitDate
		m.UpdatedAt = owner.UpdatedAt
		m.PrimaryOwner = owner.PrimaryOwner
		m.TeamOwnersAdminMaintain = owner.TeamOwnersAdminMaintain
		m.Visibility = owner.Visibility
		return m
	}
	m.Repo = drv.RepoName
	m.LastCommitter = drv.LastCommitter
	m.LastCommitDate = drv.LastCommitDate
	return m
}
