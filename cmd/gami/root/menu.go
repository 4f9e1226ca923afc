package root

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/state"
	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

// menu is a plain numbered REPL over the same service the subcommands
// use; handy over ssh where the full-screen dashboard is unpleasant.
func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu (numbered prompts, no TUI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(context.Background(), func(svc *engine.Service) error {
				return runMenu(svc, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}
	return cmd
}

func runMenu(svc *engine.Service, in io.Reader, out io.Writer) error {
	r := bufio.NewScanner(in)
	for {
		printStatusBar(svc, out)
		fmt.Fprintln(out, "\n1) Özet")
		fmt.Fprintln(out, "2) Yeni görev")
		fmt.Fprintln(out, "3) Sayaç başlat")
		fmt.Fprintln(out, "4) Sayaç durdur")
		fmt.Fprintln(out, "5) Amca (hızlı kazanım)")
		fmt.Fprintln(out, "6) Seri kontrolü (bugün)")
		fmt.Fprintln(out, "7) Kaydet ve çık")
		fmt.Fprint(out, "Seçim: ")

		choice, ok := readLine(r)
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			printSummary(svc, out)
		case "2":
			menuAddTask(svc, r, out)
		case "3":
			menuStartTimer(svc, r, out)
		case "4":
			menuStopTimer(svc, r, out)
		case "5":
			menuAmca(svc, r, out)
		case "6":
			menuStreak(svc, out)
		case "7":
			fmt.Fprintln(out, "Kaydedildi, görüşürüz!")
			return nil
		default:
			fmt.Fprintln(out, ui.Muted.Render("geçersiz seçim"))
		}
	}
}

func readLine(r *bufio.Scanner) (string, bool) {
	if !r.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.Text()), true
}

func printStatusBar(svc *engine.Service, out io.Writer) {
	st := svc.State()
	p := st.Profile
	fmt.Fprintf(out, "\n[ DURUM ] Seviye %d (%s) | XP: %d | %s | Cüzdan: %.2f TL\n",
		p.Level, p.LevelName, p.XP, ui.StreakText(p.StreakDays, p.StreakFreezes), st.Wallet.Balance)
	fmt.Fprintln(out, strings.Repeat("-", 80))
}

func printSummary(svc *engine.Service, out io.Writer) {
	st := svc.State()
	fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Özet"))
	fmt.Fprintln(out, ui.LabelValue("Oyuncu", fmt.Sprintf("%s (seviye %d, %s)", st.Profile.Username, st.Profile.Level, st.Profile.LevelName)))
	fmt.Fprintln(out, ui.LabelValue("XP", st.Profile.XP))
	fmt.Fprintln(out, ui.LabelValue("Cüzdan", fmt.Sprintf("%.2f", st.Wallet.Balance)))

	fmt.Fprintln(out, "\n"+ui.H2.Render("Beceriler"))
	for _, name := range state.DefaultStatNames {
		s, ok := st.Stats[name]
		if !ok || s.TotalSeconds == 0 {
			continue
		}
		fmt.Fprintf(out, "  %s: seviye %d (%.2f saat)\n", name, engine.StatLevel(s), float64(s.TotalSeconds)/3600)
	}

	fmt.Fprintln(out, "\n"+ui.H2.Render("Son kayıtlar"))
	logs := recentLogs(st, 5)
	for _, log := range logs {
		fmt.Fprintf(out, "  %s: amca=%d, zikir=%d, gelir=%.2f\n", log.Date, log.AmcaCount, log.ZikrCount, log.IncomeAmount)
	}
	fmt.Fprintln(out, "")
}

// recentLogs returns up to n routine logs, newest date first.
func recentLogs(st *state.AppState, n int) []*state.DailyRoutineLog {
	keys := make([]string, 0, len(st.DailyLogs))
	for k := range st.DailyLogs {
		keys = append(keys, k)
	}
	// Date keys sort lexicographically.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if len(keys) > n {
		keys = keys[:n]
	}
	out := make([]*state.DailyRoutineLog, 0, len(keys))
	for _, k := range keys {
		out = append(out, st.DailyLogs[k])
	}
	return out
}

func menuAddTask(svc *engine.Service, r *bufio.Scanner, out io.Writer) {
	fmt.Fprintln(out, "\n"+ui.H2.Render("Yeni görev"))
	fmt.Fprint(out, "Başlık: ")
	title, ok := readLine(r)
	if !ok {
		return
	}
	fmt.Fprint(out, "Açıklama: ")
	desc, _ := readLine(r)
	fmt.Fprint(out, "Kategori: ")
	cat, _ := readLine(r)
	fmt.Fprint(out, "XP ödülü: ")
	xpText, _ := readLine(r)
	fmt.Fprint(out, "Puan ödülü: ")
	pointsText, _ := readLine(r)
	fmt.Fprint(out, "Hedef dakika (0 = yok): ")
	targetText, _ := readLine(r)

	xp, err1 := strconv.Atoi(xpText)
	points, err2 := strconv.Atoi(pointsText)
	target, err3 := strconv.Atoi(targetText)
	if err1 != nil || err2 != nil || err3 != nil {
		fmt.Fprintln(out, ui.Bad.Render("sayı bekleniyordu, görev oluşturulmadı"))
		return
	}

	fmt.Fprint(out, "Beceri adı (boş bırakılabilir): ")
	statName, _ := readLine(r)

	in := engine.TaskInput{
		Title:       title,
		Description: desc,
		Category:    cat,
		Recurrence:  engine.RecurrenceDaily,
		XPReward:    xp,
		PointReward: points,
	}
	if target > 0 {
		in.TargetMinutes = &target
	}
	if statName != "" {
		in.StatName = &statName
	}
	t, err := svc.CreateTask(in, time.Now())
	if err != nil {
		fmt.Fprintln(out, ui.Bad.Render(err.Error()))
		return
	}
	fmt.Fprintf(out, "%s %s oluşturuldu\n", ui.IconPlus, t.Title)
}

func menuStartTimer(svc *engine.Service, r *bufio.Scanner, out io.Writer) {
	tasks := svc.State().TasksInOrder()
	if len(tasks) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("görev yok"))
		return
	}
	fmt.Fprintln(out, "\n"+ui.H2.Render("Görevler"))
	for i, t := range tasks {
		fmt.Fprintf(out, "%d) %s [XP: %d] (%s…)\n", i+1, t.Title, t.XPReward, shortID(t.ID, 4))
	}
	fmt.Fprint(out, "Başlatılacak görev #: ")
	text, ok := readLine(r)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(text)
	if err != nil || idx < 1 || idx > len(tasks) {
		fmt.Fprintln(out, ui.Bad.Render("geçersiz seçim"))
		return
	}
	task := tasks[idx-1]
	sess := svc.StartTimer(task.ID)
	fmt.Fprintf(out, "%s %s başladı (%s)\n", ui.IconTimer, task.Title, sess.StartTime.Format("15:04:05"))
}

func menuStopTimer(svc *engine.Service, r *bufio.Scanner, out io.Writer) {
	active := svc.AllActiveSessions()
	if len(active) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("çalışan sayaç yok"))
		return
	}
	fmt.Fprintln(out, "\n"+ui.H2.Render("Aktif oturumlar"))
	for i, sess := range active {
		title := sess.TaskID
		if t := svc.Task(sess.TaskID); t != nil {
			title = t.Title
		}
		fmt.Fprintf(out, "%d) %s (başlangıç %s)\n", i+1, title, sess.StartTime.Format("15:04:05"))
	}
	fmt.Fprint(out, "Durdurulacak oturum #: ")
	text, ok := readLine(r)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(text)
	if err != nil || idx < 1 || idx > len(active) {
		fmt.Fprintln(out, ui.Bad.Render("geçersiz seçim"))
		return
	}
	sess := svc.StopTimer(active[idx-1].ID)
	fmt.Fprintf(out, "%s Sayaç durdu: %d dakika\n", ui.IconDone, sess.DurationSeconds/60)
	if t := svc.Task(sess.TaskID); t != nil {
		fmt.Fprintf(out, "+%d XP, +%d puan\n", t.XPReward, t.PointReward)
	}
}

func menuAmca(svc *engine.Service, r *bufio.Scanner, out io.Writer) {
	fmt.Fprintln(out, "\n"+ui.H2.Render("Amca (hızlı kazanım)"))
	fmt.Fprint(out, "XP değeri (varsayılan 10): ")
	text, ok := readLine(r)
	if !ok {
		return
	}
	xp := 10
	if text != "" {
		v, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(out, ui.Bad.Render("sayı bekleniyordu"))
			return
		}
		xp = v
	}
	fmt.Fprint(out, "Not (boş bırakılabilir): ")
	noteText, _ := readLine(r)
	var note *string
	if noteText != "" {
		note = &noteText
	}
	svc.RecordAmcaAction(xp, note, time.Now())
	fmt.Fprintf(out, "%s +%d XP\n", ui.IconLoop, xp)
}

func menuStreak(svc *engine.Service, out io.Writer) {
	before := svc.State().Profile.StreakDays
	svc.UpdateStreak(time.Now())
	after := svc.State().Profile.StreakDays
	switch {
	case after > before:
		fmt.Fprintf(out, "%s Seri arttı: %d gün\n", ui.IconFire, after)
	case after == 0 && before > 0:
		fmt.Fprintln(out, ui.Bad.Render("Seri sıfırlandı (şartlar sağlanmadı)"))
	default:
		fmt.Fprintf(out, "Seri güncellendi: %d gün\n", after)
	}
}
