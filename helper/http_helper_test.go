package helper

import (
	"net/http"
	"testing"

	"blog-cms/models"

	"github.com/stretchr/testify/assert"
)

func TestUnderscore(t *testing.T) {
	cases := map[string]string{
		"Title":      "title",
		"PrivateDoc": "private_doc",
		"ArticleID":  "article_i_d",
		"perex":      "perex",
	}

	for in, want := range cases {
		assert.Equal(t, want, Underscore(in))
	}
}

func TestGetStatusCode(t *testing.T) {
	h := &HTTPHelper{}

	assert.Equal(t, http.StatusOK, h.GetStatusCode(nil))
	assert.Equal(t, http.StatusBadRequest, h.GetStatusCode(models.ErrorValidation{}))
	assert.Equal(t, http.StatusUnauthorized, h.GetStatusCode(models.ErrorUnauthorized{}))
	assert.Equal(t, http.StatusNotFound, h.GetStatusCode(models.ErrorNotFound{}))
	assert.Equal(t, http.StatusInternalServerError, h.GetStatusCode(models.ErrorStore{}))
	assert.Equal(t, http.StatusInternalServerError, h.GetStatusCode(models.ErrorPartialFailure{}))
}
