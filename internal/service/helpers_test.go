package service

import (
	"database/sql"

	"github.com/alexanderramin/compass/internal/repository"
)

// testDeps bundles the real repositories backing a service under test so
// assertions can read committed state directly.
type testDeps struct {
	db             *sql.DB
	templates      repository.PathTemplateRepo
	instantiations repository.InstantiationRepo
	goals          repository.GoalRepo
	milestones     repository.MilestoneRepo
	tasks          repository.TaskRepo
}
