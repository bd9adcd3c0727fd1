package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "hackathon"

// Membership rejection reasons
const (
	ReasonTeamFull      = "team_full"
	ReasonAlreadyMember = "already_member"
	ReasonNotFound      = "not_found"
)

// Metrics holds the domain counters exported on /metrics.
type Metrics struct {
	hackersUpserted        prometheus.Counter
	rolesSeeded            prometheus.Counter
	roleAssignments        prometheus.Counter
	rolesDropped           prometheus.Counter
	teamsCreated           prometheus.Counter
	membershipsAdded       prometheus.Counter
	membershipRejections   *prometheus.CounterVec
	hackathonsUpserted     prometheus.Counter
	winnerSolutionsCreated prometheus.Counter
	winnerConflicts        prometheus.Counter
}

// New creates the counters and registers them, together with the Go runtime
// and process collectors, on reg.
func New(reg prometheus.Registerer) *Metrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help})
	}

	m := &Metrics{
		hackersUpserted:    counter("hackers_upserted_total", "Hacker upserts (inserts and updates)."),
		rolesSeeded:        counter("roles_seeded_total", "Role rows inserted by seeding."),
		roleAssignments:    counter("role_assignments_total", "Role set replacements."),
		rolesDropped:       counter("roles_dropped_total", "Requested roles dropped because they do not exist."),
		teamsCreated:       counter("teams_created_total", "Teams created."),
		membershipsAdded:   counter("team_memberships_added_total", "Hackers added to teams."),
		hackathonsUpserted: counter("hackathons_upserted_total", "Hackathon upserts (inserts and updates)."),
		membershipRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "team_membership_rejections_total",
			Help:      "Rejected team joins by reason.",
		}, []string{"reason"}),
		winnerSolutionsCreated: counter("winner_solutions_created_total", "Winner solutions recorded."),
		winnerConflicts:        counter("winner_solution_conflicts_total", "Duplicate winner solution submissions."),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.hackersUpserted,
		m.rolesSeeded,
		m.roleAssignments,
		m.rolesDropped,
		m.teamsCreated,
		m.membershipsAdded,
		m.membershipRejections,
		m.hackathonsUpserted,
		m.winnerSolutionsCreated,
		m.winnerConflicts,
	)

	return m
}

func (m *Metrics) HackerUpserted() {
	m.hackersUpserted.Inc()
}

func (m *Metrics) RolesSeeded(n int64) {
	m.rolesSeeded.Add(float64(n))
}

func (m *Metrics) RolesAssigned(dropped int) {
	m.roleAssignments.Inc()
	m.rolesDropped.Add(float64(dropped))
}

func (m *Metrics) TeamCreated() {
	m.teamsCreated.Inc()
}

func (m *Metrics) MembershipAdded() {
	m.membershipsAdded.Inc()
}

func (m *Metrics) MembershipRejected(reason string) {
	m.membershipRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) HackathonUpserted() {
	m.hackathonsUpserted.Inc()
}

func (m *Metrics) WinnerSolutionCreated() {
	m.winnerSolutionsCreated.Inc()
}

func (m *Metrics) WinnerSolutionConflict() {
	m.winnerConflicts.Inc()
}
