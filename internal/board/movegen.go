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

package board

import (
	. "github.com/corvuschess/corvus/internal/chesstypes"
)

// GenMode selects which subset of moves to generate, mirroring the
// teacher's split between a full move list and a captures/promotions-only
// list. Quiescence search does not use it; it filters GenerateLegalMoves.
type GenMode uint8

const (
	// GenAll generates every pseudo-legal move.
	GenAll GenMode = iota
	// GenNonQuiet generates only captures, en passant and promotions —
	// the same move set quiescence search explores.
	GenNonQuiet
)

var knightOffsets = []Direction{17, 15, 10, 6, -6, -10, -15, -17}
var kingOffsets = []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
var bishopRays = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
var rookRays = []Direction{North, South, East, West}

// knightStep is Square.Step with a wrap check suited to knight jumps: the
// destination must be exactly an L-shape away. Kings use Square.Step.
func knightStep(s Square, d Direction) Square {
	to := int8(s) + int8(d)
	if to < 0 || to > 63 {
		return SqNone
	}
	fileDelta := int8(Square(to).File()) - int8(s.File())
	if fileDelta < 0 {
		fileDelta = -fileDelta
	}
	rankDelta := int8(Square(to).Rank()) - int8(s.Rank())
	if rankDelta < 0 {
		rankDelta = -rankDelta
	}
	if !((fileDelta == 1 && rankDelta == 2) || (fileDelta == 2 && rankDelta == 1)) {
		return SqNone
	}
	return Square(to)
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	// Pawns.
	var pawnDirs [2]Direction
	if by == White {
		pawnDirs = [2]Direction{SouthEast, SouthWest}
	} else {
		pawnDirs = [2]Direction{NorthEast, NorthWest}
	}
	for _, d := range pawnDirs {
		from := sq.Step(d)
		if from == SqNone {
			continue
		}
		pc := p.squares[from]
		if pc.ColorOf() == by && pc.TypeOf() == Pawn {
			return true
		}
	}

	// Knights.
	for _, d := range knightOffsets {
		from := knightStep(sq, d)
		if from == SqNone {
			continue
		}
		pc := p.squares[from]
		if pc.ColorOf() == by && pc.TypeOf() == Knight {
			return true
		}
	}

	// King.
	for _, d := range kingOffsets {
		from := sq.Step(d)
		if from == SqNone {
			continue
		}
		pc := p.squares[from]
		if pc.ColorOf() == by && pc.TypeOf() == King {
			return true
		}
	}

	// Sliding pieces.
	for _, d := range bishopRays {
		if p.slidingAttacker(sq, d, by, Bishop, Queen) {
			return true
		}
	}
	for _, d := range rookRays {
		if p.slidingAttacker(sq, d, by, Rook, Queen) {
			return true
		}
	}
	return false
}

func (p *Position) slidingAttacker(sq Square, d Direction, by Color, t1, t2 PieceType) bool {
	cur := sq
	for {
		cur = cur.Step(d)
		if cur == SqNone {
			return false
		}
		pc := p.squares[cur]
		if pc == PieceNone {
			continue
		}
		if pc.ColorOf() == by && (pc.TypeOf() == t1 || pc.TypeOf() == t2) {
			return true
		}
		return false
	}
}

// GeneratePseudoLegalMoves generates all moves for the side to move without
// checking whether the mover's own king ends up in check.
func (p *Position) GeneratePseudoLegalMoves(mode GenMode) []Move {
	moves := make([]Move, 0, 48)
	us := p.sideToMove
	for sq := Square(0); sq < 64; sq++ {
		pc := p.squares[sq]
		if pc == PieceNone || pc.ColorOf() != us {
			continue
		}
		switch pc.TypeOf() {
		case Pawn:
			p.genPawnMoves(&moves, sq, us, mode)
		case Knight:
			p.genStepMoves(&moves, sq, knightOffsets, knightStep, mode)
		case Bishop:
			p.genSlideMoves(&moves, sq, bishopRays, mode)
		case Rook:
			p.genSlideMoves(&moves, sq, rookRays, mode)
		case Queen:
			p.genSlideMoves(&moves, sq, bishopRays, mode)
			p.genSlideMoves(&moves, sq, rookRays, mode)
		case King:
			p.genStepMoves(&moves, sq, kingOffsets, Square.Step, mode)
			if mode == GenAll {
				p.genCastlingMoves(&moves, us)
			}
		}
	}
	return moves
}

// GenerateLegalMoves filters GeneratePseudoLegalMoves(GenAll) down to moves
// that do not leave the mover's own king in check, via make/unmake + an
// attack re-check — the teacher's WasLegalMove idiom, simpler than
// maintaining pin information.
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.GeneratePseudoLegalMoves(GenAll)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		p.DoMove(m)
		if p.WasLegalMove() {
			legal = append(legal, m)
		}
		p.UndoMove()
	}
	return legal
}

func (p *Position) genStepMoves(moves *[]Move, from Square, offsets []Direction, step func(Square, Direction) Square, mode GenMode) {
	us := p.squares[from].ColorOf()
	for _, d := range offsets {
		to := step(from, d)
		if to == SqNone {
			continue
		}
		target := p.squares[to]
		if target != PieceNone {
			if target.ColorOf() != us {
				*moves = append(*moves, CreateMove(from, to, Normal, PtNone))
			}
			continue
		}
		if mode == GenAll {
			*moves = append(*moves, CreateMove(from, to, Normal, PtNone))
		}
	}
}

func (p *Position) genSlideMoves(moves *[]Move, from Square, rays []Direction, mode GenMode) {
	us := p.squares[from].ColorOf()
	for _, d := range rays {
		to := from
		for {
			to = to.Step(d)
			if to == SqNone {
				break
			}
			target := p.squares[to]
			if target == PieceNone {
				if mode == GenAll {
					*moves = append(*moves, CreateMove(from, to, Normal, PtNone))
				}
				continue
			}
			if target.ColorOf() != us {
				*moves = append(*moves, CreateMove(from, to, Normal, PtNone))
			}
			break
		}
	}
}

var promotionPieces = []PieceType{Queen, Rook, Bishop, Knight}

func (p *Position) genPawnMoves(moves *[]Move, from Square, us Color, mode GenMode) {
	forward := North
	startRank := Rank2
	promoRank := Rank8
	if us == Black {
		forward = South
		startRank = Rank7
		promoRank = Rank1
	}

	addPawnMove := func(to Square, mt MoveType) {
		if to.Rank() == promoRank && mt == Normal {
			for _, pt := range promotionPieces {
				*moves = append(*moves, CreateMove(from, to, Promotion, pt))
			}
			return
		}
		*moves = append(*moves, CreateMove(from, to, mt, PtNone))
	}

	if mode == GenAll {
		one := from.Step(forward)
		if one != SqNone && p.squares[one] == PieceNone {
			addPawnMove(one, Normal)
			if from.Rank() == startRank {
				two := one.Step(forward)
				if two != SqNone && p.squares[two] == PieceNone {
					addPawnMove(two, Normal)
				}
			}
		}
	} else {
		one := from.Step(forward)
		if one != SqNone && one.Rank() == promoRank && p.squares[one] == PieceNone {
			addPawnMove(one, Normal)
		}
	}

	var captureDirs [2]Direction
	if us == White {
		captureDirs = [2]Direction{NorthEast, NorthWest}
	} else {
		captureDirs = [2]Direction{SouthEast, SouthWest}
	}
	for _, d := range captureDirs {
		to := from.Step(d)
		if to == SqNone {
			continue
		}
		if to == p.enPassantSquare {
			*moves = append(*moves, CreateMove(from, to, EnPassant, PtNone))
			continue
		}
		target := p.squares[to]
		if target != PieceNone && target.ColorOf() != us {
			addPawnMove(to, Normal)
		}
	}
}

func (p *Position) genCastlingMoves(moves *[]Move, us Color) {
	if us == White {
		if p.castlingRights.Has(CastlingWhiteOO) &&
			p.squares[SqF1] == PieceNone && p.squares[SqG1] == PieceNone &&
			!p.IsAttacked(SqE1, Black) && !p.IsAttacked(SqF1, Black) && !p.IsAttacked(SqG1, Black) {
			*moves = append(*moves, CreateMove(SqE1, SqG1, Castling, PtNone))
		}
		if p.castlingRights.Has(CastlingWhiteOOO) &&
			p.squares[SqD1] == PieceNone && p.squares[SqC1] == PieceNone && p.squares[SqB1] == PieceNone &&
			!p.IsAttacked(SqE1, Black) && !p.IsAttacked(SqD1, Black) && !p.IsAttacked(SqC1, Black) {
			*moves = append(*moves, CreateMove(SqE1, SqC1, Castling, PtNone))
		}
		return
	}
	if p.castlingRights.Has(CastlingBlackOO) &&
		p.squares[SqF8] == PieceNone && p.squares[SqG8] == PieceNone &&
		!p.IsAttacked(SqE8, White) && !p.IsAttacked(SqF8, White) && !p.IsAttacked(SqG8, White) {
		*moves = append(*moves, CreateMove(SqE8, SqG8, Castling, PtNone))
	}
	if p.castlingRights.Has(CastlingBlackOOO) &&
		p.squares[SqD8] == PieceNone && p.squares[SqC8] == PieceNone && p.squares[SqB8] == PieceNone &&
		!p.IsAttacked(SqE8, White) && !p.IsAttacked(SqD8, White) && !p.IsAttacked(SqC8, White) {
		*moves = append(*moves, CreateMove(SqE8, SqC8, Castling, PtNone))
	}
}

// IsCapture reports whether m captures a piece in the current position
// (including en passant), used by move ordering's MVV-LVA scoring.
func (p *Position) IsCapture(m Move) bool {
	if m.MoveType() == EnPassant {
		return true
	}
	return p.squares[m.To()] != PieceNone
}

// CapturedPiece returns the piece m would capture, or PieceNone.
func (p *Position) CapturedPiece(m Move) Piece {
	if m.MoveType() == EnPassant {
		return MakePiece(p.sideToMove.Flip(), Pawn)
	}
	return p.squares[m.To()]
}

// GivesCheck reports whether making m would check the opponent. The search
// does not call it: quiescence search considers only captures and
// promotions, not checking moves.
func (p *Position) GivesCheck(m Move) bool {
	p.DoMove(m)
	check := p.InCheck()
	p.UndoMove()
	return check
}
