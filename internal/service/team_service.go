package service

import (
	"context"

	"github.com/alexanderramin/docspace/internal/domain"
	"github.com/alexanderramin/docspace/internal/repository"
)

type teamService struct {
	members repository.MemberRepo
	tasks   repository.TaskRepo
}

func NewTeamService(members repository.MemberRepo, tasks repository.TaskRepo) TeamService {
	return &teamService{members: members, tasks: tasks}
}

func (s *teamService) Members(ctx context.Context) ([]*domain.TeamMember, error) {
	return s.members.List(ctx)
}

func (s *teamService) Tasks(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *teamService) Workload(ctx context.Context) ([]MemberWorkload, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	active := map[string]int{}
	for _, t := range tasks {
		if t.IsAssigned() && t.Status != domain.TaskCompleted {
			active[*t.AssigneeID]++
		}
	}

	out := make([]MemberWorkload, 0, len(members))
	for _, m := range members {
		out = append(out, MemberWorkload{
			Member:      m,
			Ratio:       m.WorkloadRatio(),
			Percent:     m.WorkloadPercent(),
			Level:       m.WorkloadLevel(),
			ActiveTasks: active[m.ID],
		})
	}
	return out, nil
}

func (s *teamService) Unassigned(ctx context.Context) (int, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return 0, err
	}
	return domain.CountUnassigned(tasks), nil
}
