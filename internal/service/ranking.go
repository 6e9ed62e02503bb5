package service

import (
	"sort"

	"cavemap-backend/internal/database/models"
)

// RankInheritanceCandidates orders membership rows by suitability to
// inherit a cave: role priority first (OWNER > ADMIN > MEMBER), then
// earliest joined_at, then lowest member_id. The final key makes the
// order a strict total order even when two members share a join
// timestamp; the original ranking left that tie unspecified, so the row
// id was picked as the stable secondary identifier.
//
// The ranking is a pure function of the membership snapshot: identical
// inputs always produce the identical order.
func RankInheritanceCandidates(members []models.GroupMember, excludeEmail string) []models.GroupMember {
	candidates := make([]models.GroupMember, 0, len(members))
	seen := make(map[string]bool, len(members))

	sorted := make([]models.GroupMember, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Role.Priority() != b.Role.Priority() {
			return a.Role.Priority() > b.Role.Priority()
		}
		if !a.JoinedAt.Equal(b.JoinedAt) {
			return a.JoinedAt.Before(b.JoinedAt)
		}
		return a.MemberID < b.MemberID
	})

	// A user in several of the cave's groups counts once, at their
	// best-ranked membership
	for _, m := range sorted {
		if m.UserEmail == excludeEmail || seen[m.UserEmail] {
			continue
		}
		seen[m.UserEmail] = true
		candidates = append(candidates, m)
	}
	return candidates
}

// SelectCaveInheritor picks the best inheritance candidate, or nil when
// no candidate remains after excluding the departing owner
func SelectCaveInheritor(members []models.GroupMember, excludeEmail string) *models.GroupMember {
	ranked := RankInheritanceCandidates(members, excludeEmail)
	if len(ranked) == 0 {
		return nil
	}
	return &ranked[0]
}

// SelectGroupSuccessor picks the member to promote to OWNER when a
// group's owner is deleted: the earliest-joined ADMIN, or failing that
// the earliest-joined member of any role. The input must already exclude
// the departing owner and be ordered by join time ascending.
func SelectGroupSuccessor(members []models.GroupMember) *models.GroupMember {
	for i := range members {
		if members[i].Role == models.MemberRoleAdmin {
			return &members[i]
		}
	}
	if len(members) == 0 {
		return nil
	}
	return &members[0]
}
