package daterange

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// maxSpanDays limita o custo de consulta/ingestão de uma única janela
const maxSpanDays = 365

// Range é um intervalo de calendário inclusivo nas duas pontas
type Range struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// DateRangeError carrega a entrada que causou a falha de resolução
type DateRangeError struct {
	Input  string
	Reason string
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("intervalo de datas inválido %q: %s", e.Input, e.Reason)
}

func newError(input, reason string) *DateRangeError {
	return &DateRangeError{Input: input, Reason: reason}
}

// Resolver converte presets e intervalos customizados em um Range concreto
// no fuso horário do chamador. O relógio é injetável para testes
type Resolver struct {
	now func() time.Time
	loc *time.Location
}

func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}

	return &Resolver{
		now: time.Now,
		loc: loc,
	}
}

// WithClock substitui o relógio do resolver. Usado em testes
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// Resolve aceita presets (today, yesterday, last_7d, this_month, ...),
// intervalos customizados ("2025-01-01,2025-01-31" ou "2025-01-01 to
// 2025-01-31") e datas isoladas (start = end).
//
// Regra de projeto: todo preset de "período corrente" (exceto today) termina
// em ONTEM, nunca hoje: o dado do dia corrente no upstream é sempre parcial
func (r *Resolver) Resolve(input string) (Range, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Range{}, newError(input, "entrada vazia")
	}

	if rg, ok, err := r.resolvePreset(trimmed); ok {
		return rg, err
	}

	return r.resolveCustom(input, trimmed)
}

// Lookback retorna a janela dos últimos N dias completos, terminando em
// ontem. N menor que 1 degenera para a janela de um dia (ontem)
func (r *Resolver) Lookback(days int) Range {
	if days < 1 {
		days = 1
	}

	today := r.today()

	return Range{
		StartDate: today.AddDate(0, 0, -days).Format(dateLayout),
		EndDate:   today.AddDate(0, 0, -1).Format(dateLayout),
	}
}

func (r *Resolver) resolvePreset(input string) (Range, bool, error) {
	today := r.today()
	yesterday := today.AddDate(0, 0, -1)

	var start, end time.Time

	switch strings.ToLower(input) {
	case "today":
		start, end = today, today
	case "yesterday":
		start, end = yesterday, yesterday
	case "last_7d", "last_7_days":
		start, end = today.AddDate(0, 0, -7), yesterday
	case "last_14d", "last_14_days":
		start, end = today.AddDate(0, 0, -14), yesterday
	case "last_30d", "last_30_days":
		start, end = today.AddDate(0, 0, -30), yesterday
	case "this_week":
		start, end = startOfWeek(today), yesterday
	case "last_week":
		start = startOfWeek(today).AddDate(0, 0, -7)
		end = start.AddDate(0, 0, 6)
	case "this_month":
		start, end = startOfMonth(today), yesterday
	case "last_month":
		start = startOfMonth(today).AddDate(0, -1, 0)
		end = startOfMonth(today).AddDate(0, 0, -1)
	case "this_quarter":
		start, end = startOfQuarter(today), yesterday
	case "last_quarter":
		start = startOfQuarter(today).AddDate(0, -3, 0)
		end = startOfQuarter(today).AddDate(0, 0, -1)
	case "this_year":
		start = time.Date(today.Year(), 1, 1, 0, 0, 0, 0, r.loc)
		end = yesterday
	case "last_year":
		start = time.Date(today.Year()-1, 1, 1, 0, 0, 0, 0, r.loc)
		end = time.Date(today.Year()-1, 12, 31, 0, 0, 0, 0, r.loc)
	default:
		return Range{}, false, nil
	}

	// Se o período corrente começou hoje (primeiro dia da semana/mês/...),
	// ontem cai antes do início; nesse caso a janela degenera para o
	// próprio dia de início
	if end.Before(start) {
		end = start
	}

	return Range{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
	}, true, nil
}

func (r *Resolver) resolveCustom(original, trimmed string) (Range, error) {
	var parts []string

	switch {
	case strings.Contains(trimmed, ","):
		parts = strings.SplitN(trimmed, ",", 2)
	case strings.Contains(trimmed, " to "):
		parts = strings.SplitN(trimmed, " to ", 2)
	default:
		// Data isolada: start = end
		date, err := parseDate(original, trimmed)
		if err != nil {
			return Range{}, err
		}
		formatted := date.Format(dateLayout)
		return Range{StartDate: formatted, EndDate: formatted}, nil
	}

	start, err := parseDate(original, strings.TrimSpace(parts[0]))
	if err != nil {
		return Range{}, err
	}

	end, err := parseDate(original, strings.TrimSpace(parts[1]))
	if err != nil {
		return Range{}, err
	}

	if start.After(end) {
		return Range{}, newError(original, "data inicial posterior à data final")
	}

	return Range{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
	}, nil
}

// Validate aplica as regras de ordenação e de span máximo. Deve ser chamado
// também sobre ranges montados por deserialização multi-campo, não apenas
// sobre a saída de Resolve
func Validate(rg Range) error {
	input := fmt.Sprintf("%s,%s", rg.StartDate, rg.EndDate)

	start, err := parseDate(input, rg.StartDate)
	if err != nil {
		return err
	}

	end, err := parseDate(input, rg.EndDate)
	if err != nil {
		return err
	}

	if start.After(end) {
		return newError(input, "data inicial posterior à data final")
	}

	if end.Sub(start) > maxSpanDays*24*time.Hour {
		return newError(input, fmt.Sprintf("intervalo maior que %d dias", maxSpanDays))
	}

	return nil
}

// FormatForDisplay formata o intervalo para exibição (dd/mm/aaaa)
func FormatForDisplay(rg Range) string {
	start, startErr := time.Parse(dateLayout, rg.StartDate)
	end, endErr := time.Parse(dateLayout, rg.EndDate)
	if startErr != nil || endErr != nil {
		return fmt.Sprintf("%s a %s", rg.StartDate, rg.EndDate)
	}

	if rg.StartDate == rg.EndDate {
		return start.Format("02/01/2006")
	}

	return fmt.Sprintf("%s a %s", start.Format("02/01/2006"), end.Format("02/01/2006"))
}

// RelativeDescription descreve o intervalo em termos relativos ("hoje",
// "ontem", "últimos 7 dias"), caindo para o intervalo literal quando não
// há descrição natural
func (r *Resolver) RelativeDescription(rg Range) string {
	start, startErr := time.Parse(dateLayout, rg.StartDate)
	end, endErr := time.Parse(dateLayout, rg.EndDate)
	if startErr != nil || endErr != nil {
		return FormatForDisplay(rg)
	}

	today := r.today()
	yesterday := today.AddDate(0, 0, -1)

	if rg.StartDate == rg.EndDate {
		switch start.Format(dateLayout) {
		case today.Format(dateLayout):
			return "hoje"
		case yesterday.Format(dateLayout):
			return "ontem"
		}
		return FormatForDisplay(rg)
	}

	// Janelas que terminam ontem são descritas como "últimos N dias"
	if end.Format(dateLayout) == yesterday.Format(dateLayout) {
		days := int(end.Sub(start).Hours()/24) + 1
		return fmt.Sprintf("últimos %d dias", days)
	}

	return FormatForDisplay(rg)
}

// Dates materializa o intervalo em uma lista de dias, útil para iteração
func (rg Range) Dates() ([]time.Time, error) {
	start, err := time.Parse(dateLayout, rg.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(dateLayout, rg.EndDate)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	return dates, nil
}

func (r *Resolver) today() time.Time {
	now := r.now().In(r.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.loc)
}

func parseDate(input, value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, newError(input, fmt.Sprintf("data malformada ou inválida: %q", value))
	}

	return date, nil
}

func startOfWeek(day time.Time) time.Time {
	// Semana começa na segunda-feira
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	return day.AddDate(0, 0, -(weekday - 1))
}

func startOfMonth(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
}

func startOfQuarter(day time.Time) time.Time {
	quarterMonth := time.Month(((int(day.Month())-1)/3)*3 + 1)
	return time.Date(day.Year(), quarterMonth, 1, 0, 0, 0, 0, day.Location())
}
