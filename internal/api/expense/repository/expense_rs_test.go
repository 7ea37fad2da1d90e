package expenseRepository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeEscaperMatchesMetacharactersLiterally(t *testing.T) {
	assert.Equal(t, `100\%`, likeEscaper.Replace("100%"))
	assert.Equal(t, `a\_b`, likeEscaper.Replace("a_b"))
	assert.Equal(t, `C:\\Temp`, likeEscaper.Replace(`C:\Temp`))
	assert.Equal(t, "Downtown", likeEscaper.Replace("Downtown"))
}
