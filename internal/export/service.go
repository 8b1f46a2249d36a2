package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/cimile-club/lineup-api/internal/config"
	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// 상대팀, 경기장, 감독처럼 조인이 비어있을 수 있는 칸에 쓰는 표시.
const placeholder = "미정"

type ExportService struct {
	db               *gorm.DB
	exportRepository *ExportRepository
	club             config.ClubConfig
}

func NewExportService(db *gorm.DB, exportRepository *ExportRepository, club config.ClubConfig) *ExportService {
	return &ExportService{
		db:               db,
		exportRepository: exportRepository,
		club:             club,
	}
}

type slotEntry struct {
	PlayerName string
	Number     string
	Position   string
}

// lineupSheet is the fully-resolved view both renderers consume.
type lineupSheet struct {
	LineupName string
	GameDate   string
	Opponent   string
	VenueName  string
	HomeAway   string
	ClubName   string
	CoachName  string
	Pitcher    *slotEntry
	Batters    [9]*slotEntry // index = 타순 - 1
}

func (s *ExportService) resolveLineup(ctx context.Context, lineupID uint32) (*lineupSheet, error) {
	lineup, err := s.exportRepository.FindLineup(ctx, s.db, lineupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("라인업을 찾을 수 없습니다 lineupID=%d %w", lineupID, ErrExportLineupMissing)
		}
		return nil, fmt.Errorf("라인업 조회 실패: %w", err)
	}

	sheet := &lineupSheet{
		LineupName: lineup.Name,
		GameDate:   placeholder,
		Opponent:   placeholder,
		VenueName:  placeholder,
		HomeAway:   placeholder,
		ClubName:   s.club.Name,
		CoachName:  placeholder,
	}

	game, err := s.exportRepository.FindGame(ctx, s.db, lineup.GameID)
	if err != nil {
		return nil, fmt.Errorf("경기 조회 실패: %w", err)
	}
	if game != nil {
		sheet.GameDate = game.PlayedAt.Format("2006-01-02 15:04")
		if game.IsHome {
			sheet.HomeAway = "홈"
		} else {
			sheet.HomeAway = "원정"
		}

		opponent, err := s.exportRepository.FindTeam(ctx, s.db, game.OpponentTeamID)
		if err != nil {
			return nil, fmt.Errorf("상대 팀 조회 실패: %w", err)
		}
		if opponent != nil {
			sheet.Opponent = opponent.Name
		}

		venue, err := s.exportRepository.FindVenue(ctx, s.db, game.VenueID)
		if err != nil {
			return nil, fmt.Errorf("경기장 조회 실패: %w", err)
		}
		if venue != nil {
			sheet.VenueName = venue.Name
		}
	}

	if s.club.TeamID != 0 {
		club, err := s.exportRepository.FindTeam(ctx, s.db, s.club.TeamID)
		if err != nil {
			return nil, fmt.Errorf("구단 팀 조회 실패: %w", err)
		}
		if club != nil {
			sheet.ClubName = club.Name
		}
	}
	if s.club.CoachPlayerID != 0 {
		coach, err := s.exportRepository.FindPlayer(ctx, s.db, s.club.CoachPlayerID)
		if err != nil {
			return nil, fmt.Errorf("감독 조회 실패: %w", err)
		}
		if coach != nil {
			sheet.CoachName = coach.Name
		}
	}

	slots, err := s.exportRepository.FindSlots(ctx, s.db, lineupID)
	if err != nil {
		return nil, fmt.Errorf("라인업 구성 조회 실패: %w", err)
	}

	playerIDs := make([]uint32, 0, len(slots))
	for _, slot := range slots {
		playerIDs = append(playerIDs, slot.PlayerID)
	}
	players := make(map[uint32]model.Player)
	if len(playerIDs) > 0 {
		players, err = s.exportRepository.FindPlayersByIDs(ctx, s.db, playerIDs)
		if err != nil {
			return nil, fmt.Errorf("선수 조회 실패: %w", err)
		}
	}

	for _, slot := range slots {
		entry := &slotEntry{
			PlayerName: placeholder,
			Number:     "",
			Position:   "",
		}
		if player, ok := players[slot.PlayerID]; ok {
			entry.PlayerName = player.Name
			if player.Number != nil {
				entry.Number = strconv.Itoa(*player.Number)
			}
		}
		if slot.Position != nil {
			entry.Position = *slot.Position
		}

		if slot.IsPitcher() {
			sheet.Pitcher = entry
			continue
		}
		if slot.BattingOrder >= 1 && slot.BattingOrder <= 9 {
			sheet.Batters[slot.BattingOrder-1] = entry
		}
	}

	return sheet, nil
}

// LineupSpreadsheet renders a lineup as an xlsx workbook.
func (s *ExportService) LineupSpreadsheet(ctx context.Context, lineupID uint32) ([]byte, string, error) {
	sheet, err := s.resolveLineup(ctx, lineupID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	name := f.GetSheetName(0)

	setCells(f, name, [][]any{
		{fmt.Sprintf("%s 라인업", sheet.ClubName)},
		{"라인업", sheet.LineupName},
		{"경기일시", sheet.GameDate},
		{"상대팀", sheet.Opponent},
		{"경기장", sheet.VenueName},
		{"홈/원정", sheet.HomeAway},
		{"감독", sheet.CoachName},
		{},
		{"타순", "선수", "등번호", "포지션"},
	})

	row := 10
	for i, entry := range sheet.Batters {
		writeSlotRow(f, name, row, strconv.Itoa(i+1), entry)
		row++
	}
	writeSlotRow(f, name, row, "투수", sheet.Pitcher)

	_ = f.SetColWidth(name, "A", "D", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("엑셀 생성 실패: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("lineup_%d.xlsx", lineupID), nil
}

// RosterSpreadsheet renders the active player roster as an xlsx workbook.
func (s *ExportService) RosterSpreadsheet(ctx context.Context) ([]byte, string, error) {
	players, err := s.exportRepository.ListActivePlayers(ctx, s.db)
	if err != nil {
		return nil, "", fmt.Errorf("선수 목록 조회 실패: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	name := f.GetSheetName(0)

	setCells(f, name, [][]any{
		{fmt.Sprintf("%s 선수 명단", s.club.Name)},
		{},
		{"이름", "등번호", "역할", "연락처", "이메일", "선호 포지션"},
	})

	row := 4
	for _, player := range players {
		number := placeholder
		if player.Number != nil {
			number = strconv.Itoa(*player.Number)
		}
		values := []any{player.Name, number, string(player.Role),
			player.Phone, player.Email, player.PositionPreference}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(name, cell, value)
		}
		row++
	}

	_ = f.SetColWidth(name, "A", "F", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("엑셀 생성 실패: %w", err)
	}
	return buf.Bytes(), "players.xlsx", nil
}

// LineupPDF renders a lineup as a PDF document. Korean text needs the TTF
// configured by PDF_FONT_PATH; without it the document falls back to a core
// font with English labels.
func (s *ExportService) LineupPDF(ctx context.Context, lineupID uint32) ([]byte, string, error) {
	sheet, err := s.resolveLineup(ctx, lineupID)
	if err != nil {
		return nil, "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	family := "Helvetica"
	labels := pdfLabels{
		Title: "Lineup", Lineup: "Lineup", Date: "Date", Opponent: "Opponent",
		Venue: "Venue", Coach: "Coach", Order: "No.", Player: "Player",
		Number: "Jersey", Position: "Pos", Pitcher: "P",
	}
	if s.club.PDFFontPath != "" {
		family = "club"
		pdf.AddUTF8Font(family, "", s.club.PDFFontPath)
		labels = pdfLabels{
			Title: "라인업", Lineup: "라인업", Date: "경기일시", Opponent: "상대팀",
			Venue: "경기장", Coach: "감독", Order: "타순", Player: "선수",
			Number: "등번호", Position: "포지션", Pitcher: "투수",
		}
	}

	pdf.SetFont(family, "", 16)
	pdf.CellFormat(0, 12, fmt.Sprintf("%s %s", sheet.ClubName, labels.Title), "", 1, "C", false, 0, "")

	pdf.SetFont(family, "", 10)
	meta := [][2]string{
		{labels.Lineup, sheet.LineupName},
		{labels.Date, sheet.GameDate},
		{labels.Opponent, sheet.Opponent},
		{labels.Venue, sheet.VenueName},
		{labels.Coach, sheet.CoachName},
	}
	for _, m := range meta {
		pdf.CellFormat(30, 7, m[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, m[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.CellFormat(20, 8, labels.Order, "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, labels.Player, "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, labels.Number, "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, labels.Position, "1", 1, "C", false, 0, "")

	writePDFRow := func(order string, entry *slotEntry) {
		playerName, number, position := placeholder, "", ""
		if entry != nil {
			playerName, number, position = entry.PlayerName, entry.Number, entry.Position
		}
		pdf.CellFormat(20, 8, order, "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 8, playerName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, number, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, position, "1", 1, "C", false, 0, "")
	}

	for i, entry := range sheet.Batters {
		writePDFRow(strconv.Itoa(i+1), entry)
	}
	writePDFRow(labels.Pitcher, sheet.Pitcher)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("PDF 생성 실패: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("lineup_%d.pdf", lineupID), nil
}

type pdfLabels struct {
	Title    string
	Lineup   string
	Date     string
	Opponent string
	Venue    string
	Coach    string
	Order    string
	Player   string
	Number   string
	Position string
	Pitcher  string
}

func setCells(f *excelize.File, sheet string, rows [][]any) {
	for r, cols := range rows {
		for c, value := range cols {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}
}

func writeSlotRow(f *excelize.File, sheet string, row int, order string, entry *slotEntry) {
	playerName, number, position := placeholder, "", ""
	if entry != nil {
		playerName, number, position = entry.PlayerName, entry.Number, entry.Position
	}
	for c, value := range []any{order, playerName, number, position} {
		cell, _ := excelize.CoordinatesToCellName(c+1, row)
		_ = f.SetCellValue(sheet, cell, value)
	}
}
