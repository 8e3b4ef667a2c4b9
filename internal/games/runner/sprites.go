package runner

import "fmt"

// Texture and font paths used by the game.
const (
	texCharacter             = "sprites/character/normal"
	texCharacterFlying       = "sprites/character/flying"
	texCharacterShield       = "sprites/character/shield"
	texCharacterShieldFlying = "sprites/character/shield_flying"

	texObstacle   = "sprites/obstacle"
	texShuriken   = "sprites/shuriken"
	texPowerup    = "sprites/powerup"
	texAlert      = "sprites/alert"
	texBackground = "sprites/background"
	texFloor      = "sprites/floor"
	texPanel      = "sprites/panel"

	fontHUD   = "fonts/hud"
	fontTitle = "fonts/title"
	fontQuiz  = "fonts/quiz"
)

var (
	texCharacterRun       = []string{"sprites/character/run1", "sprites/character/run2"}
	texCharacterShieldRun = []string{"sprites/character/shield_run1", "sprites/character/shield_run2"}

	texCoin            = frames("sprites/coin", 8)
	texVerticalLaser   = frames("sprites/laser/vertical", 3)
	texHorizontalLaser = frames("sprites/laser/horizontal", 3)
	texRocket          = frames("sprites/rocket", 4)
)

func frames(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s/%d", prefix, i+1)
	}
	return out
}

// TexturePaths lists every texture the game can request.
func TexturePaths() []string {
	paths := []string{
		texCharacter, texCharacterFlying, texCharacterShield, texCharacterShieldFlying,
		texObstacle, texShuriken, texPowerup, texAlert, texBackground, texFloor, texPanel,
	}
	for _, set := range [][]string{
		texCharacterRun, texCharacterShieldRun, texCoin, texVerticalLaser, texHorizontalLaser, texRocket,
	} {
		paths = append(paths, set...)
	}
	return paths
}

// FontPaths lists every font the game can request.
func FontPaths() []string {
	return []string{fontHUD, fontTitle, fontQuiz}
}
