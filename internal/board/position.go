//
// Corvus - a UCI chess engine search core written in Go
//
// MIT License
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
//

// Package board implements a mailbox chess position: make/unmake, FEN I/O,
// legal move generation, Zobrist hashing and draw detection. It is the
// concrete implementation of the search core's Board collaborator
// (spec.md §6.1) — the search package depends only on that interface, never
// on this package directly.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	. "github.com/corvuschess/corvus/internal/chesstypes"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory bounds the undo stack; a real game or search line never nests
// deeper than this many plies from the root position.
const maxHistory = 1024

type undoState struct {
	zobristKey      Key
	move            Move
	movedPiece      Piece
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
}

// Position is a mailbox chess board: an 8x8 array of Piece plus the state
// needed to make/unmake moves and detect draws.
type Position struct {
	squares         [64]Piece
	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	fullMoveNumber  int
	kingSquare      [2]Square
	zobristKey      Key

	history    [maxHistory]undoState
	historyLen int
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, err := NewPositionFromFEN(StartFen)
	if err != nil {
		panic("board: invalid built-in start FEN: " + err.Error())
	}
	return p
}

// NewPositionFromFEN parses a FEN string into a Position.
func NewPositionFromFEN(fen string) (*Position, error) {
	p := &Position{enPassantSquare: SqNone, kingSquare: [2]Square{SqNone, SqNone}}
	if err := p.setFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// Clone returns a deep copy, including the undo history, so moves made on
// the copy do not disturb the original.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

func (p *Position) setFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("board: fen %q has fewer than 4 fields", fen)
	}

	for i := range p.squares {
		p.squares[i] = PieceNone
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: fen %q does not have 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			pc := PieceFromChar(string(c))
			if pc == PieceNone || file > FileH {
				return fmt.Errorf("board: fen %q has malformed rank %q", fen, rankStr)
			}
			sq := SquareOf(file, rank)
			p.squares[sq] = pc
			if pc.TypeOf() == King {
				p.kingSquare[pc.ColorOf()] = sq
			}
			file++
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return fmt.Errorf("board: fen %q has invalid side to move %q", fen, fields[1])
	}

	p.castlingRights = CastlingNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights.Add(CastlingWhiteOO)
			case 'Q':
				p.castlingRights.Add(CastlingWhiteOOO)
			case 'k':
				p.castlingRights.Add(CastlingBlackOO)
			case 'q':
				p.castlingRights.Add(CastlingBlackOOO)
			}
		}
	}

	if fields[3] == "-" {
		p.enPassantSquare = SqNone
	} else {
		p.enPassantSquare = SquareFromString(fields[3])
	}

	p.halfMoveClock = 0
	if len(fields) > 4 {
		if v, err := strconv.Atoi(fields[4]); err == nil {
			p.halfMoveClock = v
		}
	}
	p.fullMoveNumber = 1
	if len(fields) > 5 {
		if v, err := strconv.Atoi(fields[5]); err == nil {
			p.fullMoveNumber = v
		}
	}

	p.historyLen = 0
	p.zobristKey = p.computeZobrist()
	return nil
}

// computeZobrist recomputes the hash from scratch; used only at FEN load
// time, since DoMove/UndoMove maintain it incrementally afterward.
func (p *Position) computeZobrist() Key {
	var k Key
	for sq := 0; sq < 64; sq++ {
		if pc := p.squares[sq]; pc != PieceNone {
			k ^= zPiece(pc, Square(sq))
		}
	}
	k ^= zCastling(p.castlingRights)
	k ^= zEnPassant(p.enPassantSquare)
	if p.sideToMove == Black {
		k ^= zobristSideToMove
	}
	return k
}

// FEN renders the current position as a FEN string.
func (p *Position) FEN() string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		rank := Rank(7 - i)
		empty := 0
		for file := FileA; file <= FileH; file++ {
			pc := p.squares[SquareOf(file, rank)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if i != 7 {
			b.WriteString("/")
		}
	}
	b.WriteString(" ")
	b.WriteString(p.sideToMove.String())
	b.WriteString(" ")
	b.WriteString(p.castlingRights.String())
	b.WriteString(" ")
	b.WriteString(p.enPassantSquare.String())
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.halfMoveClock))
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.fullMoveNumber))
	return b.String()
}

func (p *Position) String() string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		rank := Rank(7 - i)
		for file := FileA; file <= FileH; file++ {
			b.WriteString(p.squares[SquareOf(file, rank)].String())
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// PieceAt returns the piece occupying sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece { return p.squares[sq] }

// SideToMove returns the color on move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the currently available castling moves.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfMoveClock returns the number of plies since the last capture or pawn
// move, used for the 50-move draw rule.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// ZobristKey returns the incrementally maintained Zobrist hash.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// FullMoveNumber returns the FEN fullmove counter.
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// PieceCount returns the number of pieces on the board excluding kings,
// per spec.md §6.1's Board collaborator contract.
func (p *Position) PieceCount() int {
	n := 0
	for sq := 0; sq < 64; sq++ {
		pc := p.squares[sq]
		if pc != PieceNone && pc.TypeOf() != King {
			n++
		}
	}
	return n
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// LastMove returns the most recently made move, or MoveNone at the root.
func (p *Position) LastMove() Move {
	if p.historyLen == 0 {
		return MoveNone
	}
	return p.history[p.historyLen-1].move
}

// DoMove applies m, which must be a legal (or at least pseudo-legal) move
// generated for this position. No legality check is performed here; callers
// generate moves through Position's own move generator.
func (p *Position) DoMove(m Move) {
	fromSq, toSq := m.From(), m.To()
	movedPc := p.squares[fromSq]
	capturedPc := p.squares[toSq]
	us := p.sideToMove

	h := &p.history[p.historyLen]
	h.zobristKey = p.zobristKey
	h.move = m
	h.movedPiece = movedPc
	h.capturedPiece = capturedPc
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	p.historyLen++

	p.zobristKey ^= zCastling(p.castlingRights)
	p.zobristKey ^= zEnPassant(p.enPassantSquare)

	if movedPc.TypeOf() == Pawn || capturedPc != PieceNone {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if capturedPc != PieceNone {
		p.removePiece(toSq)
	}

	switch m.MoveType() {
	case Normal:
		p.movePiece(fromSq, toSq)
	case Promotion:
		p.removePiece(fromSq)
		p.putPiece(MakePiece(us, m.PromotionType()), toSq)
	case EnPassant:
		p.movePiece(fromSq, toSq)
		capSq := toSq
		if us == White {
			capSq = toSq.Step(South)
		} else {
			capSq = toSq.Step(North)
		}
		capturedPc = p.removePiece(capSq)
		h.capturedPiece = capturedPc
	case Castling:
		p.movePiece(fromSq, toSq)
		switch toSq {
		case SqG1:
			p.movePiece(SqH1, SqF1)
		case SqC1:
			p.movePiece(SqA1, SqD1)
		case SqG8:
			p.movePiece(SqH8, SqF8)
		case SqC8:
			p.movePiece(SqA8, SqD8)
		}
	}

	if movedPc.TypeOf() == King {
		p.kingSquare[us] = toSq
	}

	p.enPassantSquare = SqNone
	if movedPc.TypeOf() == Pawn {
		diff := int8(toSq) - int8(fromSq)
		if diff == 16 || diff == -16 {
			p.enPassantSquare = fromSq.Step(North)
			if us == Black {
				p.enPassantSquare = fromSq.Step(South)
			}
		}
	}

	p.updateCastlingRights(fromSq, toSq)

	p.zobristKey ^= zCastling(p.castlingRights)
	p.zobristKey ^= zEnPassant(p.enPassantSquare)
	p.zobristKey ^= zobristSideToMove

	if us == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = us.Flip()
}

// UndoMove reverses the most recent DoMove.
func (p *Position) UndoMove() {
	p.historyLen--
	h := p.history[p.historyLen]
	m := h.move
	fromSq, toSq := m.From(), m.To()
	us := p.sideToMove.Flip()

	switch m.MoveType() {
	case Normal:
		p.squares[fromSq] = h.movedPiece
		p.squares[toSq] = h.capturedPiece
	case Promotion:
		p.squares[fromSq] = h.movedPiece
		p.squares[toSq] = h.capturedPiece
	case EnPassant:
		p.squares[fromSq] = h.movedPiece
		p.squares[toSq] = PieceNone
		capSq := toSq
		if us == White {
			capSq = toSq.Step(South)
		} else {
			capSq = toSq.Step(North)
		}
		p.squares[capSq] = h.capturedPiece
	case Castling:
		p.squares[fromSq] = h.movedPiece
		p.squares[toSq] = PieceNone
		switch toSq {
		case SqG1:
			p.squares[SqF1] = PieceNone
			p.squares[SqH1] = MakePiece(White, Rook)
		case SqC1:
			p.squares[SqD1] = PieceNone
			p.squares[SqA1] = MakePiece(White, Rook)
		case SqG8:
			p.squares[SqF8] = PieceNone
			p.squares[SqH8] = MakePiece(Black, Rook)
		case SqC8:
			p.squares[SqD8] = PieceNone
			p.squares[SqA8] = MakePiece(Black, Rook)
		}
	}

	if h.movedPiece.TypeOf() == King {
		p.kingSquare[us] = fromSq
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.zobristKey = h.zobristKey

	if us == Black {
		p.fullMoveNumber--
	}
	p.sideToMove = us
}

// DoNullMove passes the turn without moving a piece, for null-move pruning:
// only side to move and en passant state change.
func (p *Position) DoNullMove() {
	h := &p.history[p.historyLen]
	h.zobristKey = p.zobristKey
	h.move = MoveNone
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	p.historyLen++

	p.zobristKey ^= zEnPassant(p.enPassantSquare)
	p.enPassantSquare = SqNone
	p.zobristKey ^= zEnPassant(p.enPassantSquare)
	p.zobristKey ^= zobristSideToMove
	p.sideToMove = p.sideToMove.Flip()
}

// UndoNullMove reverses the most recent DoNullMove.
func (p *Position) UndoNullMove() {
	p.historyLen--
	h := p.history[p.historyLen]
	p.enPassantSquare = h.enPassantSquare
	p.zobristKey = h.zobristKey
	p.sideToMove = p.sideToMove.Flip()
}

func (p *Position) movePiece(from, to Square) {
	pc := p.removePiece(from)
	p.putPiece(pc, to)
}

func (p *Position) putPiece(pc Piece, sq Square) {
	p.squares[sq] = pc
	p.zobristKey ^= zPiece(pc, sq)
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.squares[sq]
	if pc != PieceNone {
		p.zobristKey ^= zPiece(pc, sq)
	}
	p.squares[sq] = PieceNone
	return pc
}

func (p *Position) updateCastlingRights(from, to Square) {
	switch from {
	case SqE1:
		p.castlingRights.Remove(CastlingWhite)
	case SqE8:
		p.castlingRights.Remove(CastlingBlack)
	case SqA1:
		p.castlingRights.Remove(CastlingWhiteOOO)
	case SqH1:
		p.castlingRights.Remove(CastlingWhiteOO)
	case SqA8:
		p.castlingRights.Remove(CastlingBlackOOO)
	case SqH8:
		p.castlingRights.Remove(CastlingBlackOO)
	}
	switch to {
	case SqA1:
		p.castlingRights.Remove(CastlingWhiteOOO)
	case SqH1:
		p.castlingRights.Remove(CastlingWhiteOO)
	case SqA8:
		p.castlingRights.Remove(CastlingBlackOOO)
	case SqH8:
		p.castlingRights.Remove(CastlingBlackOO)
	}
}

// WasLegalMove reports whether the side that just moved (the one NOT on
// move now) left its own king in check — i.e. whether the move just applied
// by DoMove was legal. Named after the teacher's idiom of generating
// pseudo-legal moves and filtering after the fact instead of computing pins.
func (p *Position) WasLegalMove() bool {
	justMoved := p.sideToMove.Flip()
	return !p.IsAttacked(p.kingSquare[justMoved], p.sideToMove)
}

// InCheck reports whether the side to move is currently in check.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.kingSquare[p.sideToMove], p.sideToMove.Flip())
}

// HasInsufficientMaterial reports K-vs-K and K+minor-vs-K draws.
func (p *Position) HasInsufficientMaterial() bool {
	var minorCount int
	for sq := 0; sq < 64; sq++ {
		pc := p.squares[sq]
		if pc == PieceNone {
			continue
		}
		switch pc.TypeOf() {
		case King:
			continue
		case Knight, Bishop:
			minorCount++
			if minorCount > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IsDraw reports the 50-move rule or threefold repetition, the two draw
// conditions the search must detect without help from the Board interface's
// caller (spec.md §4.5 edge case).
func (p *Position) IsDraw() bool {
	if p.halfMoveClock >= 100 {
		return true
	}
	return p.IsRepetition(3)
}

// IsRepetition reports whether the current Zobrist key has occurred at
// least `count` times among positions reachable by undoing moves within the
// current half-move-clock run (moves since the last capture or pawn push
// reset repetition, per the rules of chess).
func (p *Position) IsRepetition(count int) bool {
	seen := 1
	limit := p.historyLen - p.halfMoveClock
	if limit < 0 {
		limit = 0
	}
	for i := p.historyLen - 2; i >= limit; i -= 2 {
		if p.history[i].zobristKey == p.zobristKey {
			seen++
			if seen >= count {
				return true
			}
		}
	}
	return false
}

var errInvalidUciMove = errors.New("board: not a legal move in this position")

// MoveFromUCI parses a UCI move string (e.g. "e2e4", "e7e8q") against the
// position's legal move list, returning the matching encoded Move.
func (p *Position) MoveFromUCI(s string) (Move, error) {
	for _, m := range p.GenerateLegalMoves() {
		if m.String() == s {
			return m, nil
		}
	}
	return MoveNone, errInvalidUciMove
}
