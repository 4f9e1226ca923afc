package engine

import "github.com/iliskimuhendisi/gamicipline/internal/state"

// Badge is a milestone the profile can earn. Earned status is derived
// from the aggregate; the ids stored on the profile are permanent.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// BadgeChecker derives badge status from a read-only view of the state.
type BadgeChecker struct {
	st *state.AppState
}

func NewBadgeChecker(st *state.AppState) *BadgeChecker {
	return &BadgeChecker{st: st}
}

// Badges returns every badge with its earned status.
func (c *BadgeChecker) Badges() []Badge {
	return []Badge{
		// Level milestones
		c.levelBadge("uyanis", "Uyanış", "Seviye 2'ye ulaş", "🌱", 2),
		c.levelBadge("yolcu", "Yolcu", "Seviye 4'e ulaş", "🥾", 4),
		c.levelBadge("savasci", "Savaşçı", "Seviye 5'e ulaş", "⚔️", 5),
		c.levelBadge("usta", "Usta", "Seviye 7'ye ulaş", "🏅", 7),
		c.levelBadge("bilge", "Bilge", "Seviye 10'a ulaş", "🦉", 10),

		// Streak milestones
		c.streakBadge("kivilcim", "Kıvılcım", "3 günlük seri", "🔥", 3),
		c.streakBadge("alev", "Alev", "7 günlük seri", "🔥", 7),
		c.streakBadge("yangin", "Yangın", "30 günlük seri", "🌋", 30),

		// Effort milestones
		c.completionBadge("ilk_gorev", "İlk Görev", "1 görev tamamla", "✅", 1),
		c.completionBadge("caliskan", "Çalışkan", "10 görev tamamla", "📋", 10),
		c.completionBadge("demirbas", "Demirbaş", "50 görev tamamla", "🏆", 50),
		c.statHoursBadge("on_saat", "On Saat", "Bir beceride 10 saat", "⏳", 1),
		c.statHoursBadge("elli_saat", "Derinleşen", "Bir beceride 50 saat", "⚒️", 5),

		// Routine milestones
		c.amcaBadge("amca_dostu", "Amca Dostu", "10 hızlı kazanım", "🤝", 10),
		c.bookBadge("yazar", "Yazar", "Bir kitap projesini bitir", "📖"),
	}
}

// SyncBadges unions newly earned badge ids into the profile. Badges
// are never removed; earned is permanent even if the underlying metric
// later drops. Returns the ids added by this call.
func (s *Service) SyncBadges() []string {
	checker := NewBadgeChecker(s.st)
	var added []string
	for _, b := range checker.Badges() {
		if b.Earned && s.st.Profile.AddBadge(b.ID) {
			added = append(added, b.ID)
		}
	}
	return added
}

// Badges returns the derived badge list for display.
func (s *Service) Badges() []Badge {
	return NewBadgeChecker(s.st).Badges()
}

func (c *BadgeChecker) levelBadge(id, name, desc, icon string, level int) Badge {
	earned := LevelFromXP(c.st.Profile.XP) >= level
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned || c.st.Profile.HasBadge(id)}
}

func (c *BadgeChecker) streakBadge(id, name, desc, icon string, days int) Badge {
	earned := c.st.Profile.StreakDays >= days
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned || c.st.Profile.HasBadge(id)}
}

func (c *BadgeChecker) completionBadge(id, name, desc, icon string, count int) Badge {
	earned := len(c.st.Completions) >= count
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned || c.st.Profile.HasBadge(id)}
}

func (c *BadgeChecker) statHoursBadge(id, name, desc, icon string, statLevel int) Badge {
	earned := false
	for _, s := range c.st.Stats {
		if StatLevel(s) > statLevel {
			earned = true
			break
		}
	}
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned || c.st.Profile.HasBadge(id)}
}

func (c *BadgeChecker) amcaBadge(id, name, desc, icon string, count int) Badge {
	earned := len(c.st.AmcaActions) >= count
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned || c.st.Profile.HasBadge(id)}
}

func (c *BadgeChecker) bookBadge(id, name, desc, icon string) Badge {
	earned := false
	for _, b := range c.st.BookProjects {
		if b.IsCompleted {
			earned = true
			break
		}
	}
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned || c.st.Profile.HasBadge(id)}
}
