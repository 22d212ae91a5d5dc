package core

// playerActions resolves the player's recorded movement intent against the
// current grid. The intent was stored by SetPlayerDoing and stays in effect
// until the grid records the player idle, so a held key walks the player
// cell by cell.
//
// Target cell rules:
//
//   - Empty: move.
//   - Dirt: move, digging the dirt away.
//   - Exit: move, completing the level.
//   - Diamond: move, collecting it.
//   - Rock: pushed one cell when the intent is horizontal, the push flag is
//     set, and the cell beyond the rock is Empty; the player follows into the
//     vacated cell. Otherwise blocked.
//   - Wall, another player, off-grid: blocked, no actions.
func (g *Grid) playerActions(id EntityID, res *TickResult) []Action {
	e := g.entities[id]
	if e.Movement == Afk {
		return nil
	}

	target := g.NearestTile(e.Pos, e.Movement)
	if target == nil {
		return nil
	}

	move := func() []Action {
		res.Moves = append(res.Moves, MoveEvent{
			ID:        id,
			Kind:      EntityPlayer,
			From:      e.Pos,
			To:        target.Position(),
			Direction: e.Movement,
		})
		return []Action{
			NewAction(e.Pos, EmptyField()),
			EntityAction(target.Position(), id, e),
		}
	}

	switch field := target.Field(); field.Kind {
	case FieldEmpty:
		return move()

	case FieldDirt:
		res.DirtDug++
		return move()

	case FieldExit:
		res.PlayerExited = true
		return move()

	case FieldEntity:
		occupant := g.entities[field.Entity]
		switch occupant.Kind {
		case EntityDiamond:
			res.DiamondsCollected++
			return move()
		case EntityRock:
			return g.pushActions(id, e, field.Entity, occupant, res)
		}
	}

	return nil
}

// pushActions resolves a horizontal rock push. The rock's action is emitted
// before the player's so the rock has vacated its cell by the time the
// player's occupy action lands on it.
func (g *Grid) pushActions(id EntityID, e Entity, rockID EntityID, rock Entity, res *TickResult) []Action {
	if !e.Pushing || !e.Movement.Horizontal() {
		return nil
	}
	beyond := g.NearestTile(rock.Pos, e.Movement)
	if beyond == nil || beyond.Field().Kind != FieldEmpty {
		return nil
	}

	movedRock := rock
	movedRock.FallingSince = 0
	res.Moves = append(res.Moves,
		MoveEvent{ID: rockID, Kind: EntityRock, From: rock.Pos, To: beyond.Position(), Direction: e.Movement},
		MoveEvent{ID: id, Kind: EntityPlayer, From: e.Pos, To: rock.Pos, Direction: e.Movement},
	)
	return []Action{
		EntityAction(beyond.Position(), rockID, movedRock),
		NewAction(e.Pos, EmptyField()),
		EntityAction(rock.Pos, id, e),
	}
}

// CancelPush returns the player's "cancel any push" transform: a
// no-displacement action re-placing the record on its current tile with the
// push flag cleared.
func (g *Grid) cancelPush(id EntityID, e Entity) Action {
	e.Pushing = false
	return EntityAction(e.Pos, id, e)
}
