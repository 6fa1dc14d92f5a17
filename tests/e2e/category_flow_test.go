//go:build e2e

package e2e_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kampkelly/favourite-things/internal/adapter/postgres/testhelper"
)

func uniqueCategoryName() string {
	return fmt.Sprintf("E2E Category %s", uuid.New().String()[:8])
}

const createCategoryMutation = `mutation($name: String!) {
	createCategory(name: $name) { id name createdAt updatedAt }
}`

const deleteCategoryMutation = `mutation($id: Int!) {
	deleteCategory(id: $id) { id name }
}`

// TestE2E_Category_CreateListDelete verifies the full create-read-delete
// cycle for categories through the GraphQL API.
func TestE2E_Category_CreateListDelete(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := createTestUserAndGetToken(t, ts)

	// 1. Create category.
	name := uniqueCategoryName()
	status, result := ts.graphqlQuery(t, createCategoryMutation, map[string]any{"name": name}, token)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	created := gqlPayload(t, result, "createCategory")
	assert.Equal(t, name, created["name"])
	assert.NotEmpty(t, created["createdAt"])

	categoryID, ok := created["id"].(float64)
	require.True(t, ok, "expected numeric category id")

	// 2. List categories, verify it exists.
	listQuery := `query { allCategories { id name } }`
	status, result = ts.graphqlQuery(t, listQuery, nil, token)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	categories := gqlData(t, result)["allCategories"].([]any)
	found := false
	for _, c := range categories {
		if c.(map[string]any)["name"] == name {
			found = true
			break
		}
	}
	assert.True(t, found, "created category should appear in allCategories")

	// 3. Delete category. The response carries the deleted values.
	status, result = ts.graphqlQuery(t, deleteCategoryMutation, map[string]any{"id": int(categoryID)}, token)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	deleted := gqlPayload(t, result, "deleteCategory")
	assert.Equal(t, name, deleted["name"])

	// 4. List again, verify it is gone.
	status, result = ts.graphqlQuery(t, listQuery, nil, token)
	assert.Equal(t, http.StatusOK, status)

	categories = gqlData(t, result)["allCategories"].([]any)
	for _, c := range categories {
		assert.NotEqual(t, name, c.(map[string]any)["name"], "deleted category should not appear in list")
	}
}

func TestE2E_Category_Create_TrimsName(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := createTestUserAndGetToken(t, ts)

	name := uniqueCategoryName()
	status, result := ts.graphqlQuery(t, createCategoryMutation,
		map[string]any{"name": "  " + name + "  "}, token)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	created := gqlPayload(t, result, "createCategory")
	assert.Equal(t, name, created["name"])
}

func TestE2E_Category_Create_EmptyName(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := createTestUserAndGetToken(t, ts)

	for _, name := range []string{"", "   "} {
		status, result := ts.graphqlQuery(t, createCategoryMutation, map[string]any{"name": name}, token)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "VALIDATION", gqlErrorCode(t, result))
		assert.Equal(t, "Category name cannot be empty", gqlErrorMessage(t, result))
	}
}

func TestE2E_Category_Create_Duplicate(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := createTestUserAndGetToken(t, ts)

	name := uniqueCategoryName()
	status, result := ts.graphqlQuery(t, createCategoryMutation, map[string]any{"name": name}, token)
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	status, result = ts.graphqlQuery(t, createCategoryMutation, map[string]any{"name": name}, token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ALREADY_EXISTS", gqlErrorCode(t, result))
	assert.Equal(t, "Category already exists", gqlErrorMessage(t, result))
}

func TestE2E_Category_Delete_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := createTestUserAndGetToken(t, ts)

	status, result := ts.graphqlQuery(t, deleteCategoryMutation, map[string]any{"id": 999_999_999}, token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "NOT_FOUND", gqlErrorCode(t, result))
	assert.Equal(t, "Category does not exist", gqlErrorMessage(t, result))
}

// TestE2E_Category_Delete_BlockedByFavorites verifies that a category with
// favorite things cannot be deleted and stays listed afterwards.
func TestE2E_Category_Delete_BlockedByFavorites(t *testing.T) {
	ts := setupTestServer(t)
	token, userID := createTestUserAndGetToken(t, ts)

	cat := testhelper.SeedCategory(t, ts.Pool)
	testhelper.SeedFavoriteThing(t, ts.Pool, userID, cat.ID, 1)

	status, result := ts.graphqlQuery(t, deleteCategoryMutation, map[string]any{"id": cat.ID}, token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "CONFLICT", gqlErrorCode(t, result))
	assert.Equal(t, "Cannot delete category because it has favorite things", gqlErrorMessage(t, result))

	// The category is still there.
	status, result = ts.graphqlQuery(t, `query { allCategories { id name } }`, nil, token)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	found := false
	for _, c := range gqlData(t, result)["allCategories"].([]any) {
		if c.(map[string]any)["name"] == cat.Name {
			found = true
			break
		}
	}
	assert.True(t, found, "blocked category should still be listed")
}

// TestE2E_CategoriesAndFavorites verifies that getCategoriesAndFavorites
// groups the caller's favorites by category, ordered by ranking, and omits
// categories without favorites.
func TestE2E_CategoriesAndFavorites(t *testing.T) {
	ts := setupTestServer(t)
	token, userID := createTestUserAndGetToken(t, ts)

	catA := testhelper.SeedCategory(t, ts.Pool)
	catB := testhelper.SeedCategory(t, ts.Pool)
	testhelper.SeedCategory(t, ts.Pool) // no favorites, must be omitted

	favA2 := testhelper.SeedFavoriteThing(t, ts.Pool, userID, catA.ID, 2)
	favA1 := testhelper.SeedFavoriteThing(t, ts.Pool, userID, catA.ID, 1)
	favB1 := testhelper.SeedFavoriteThing(t, ts.Pool, userID, catB.ID, 1)

	// Another user's favorites must not leak into the response.
	other := testhelper.SeedUser(t, ts.Pool)
	testhelper.SeedFavoriteThing(t, ts.Pool, other.ID, catA.ID, 1)

	query := `query { getCategoriesAndFavorites { id name favoriteThings { id name ranking categoryId } } }`
	status, result := ts.graphqlQuery(t, query, nil, token)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	responses := gqlData(t, result)["getCategoriesAndFavorites"].([]any)
	require.Len(t, responses, 2)

	byName := map[string][]any{}
	for _, r := range responses {
		m := r.(map[string]any)
		byName[m["name"].(string)] = m["favoriteThings"].([]any)
	}

	thingsA, ok := byName[catA.Name]
	require.True(t, ok, "expected category %q in response", catA.Name)
	require.Len(t, thingsA, 2)
	assert.Equal(t, favA1.Name, thingsA[0].(map[string]any)["name"], "favorites should be ordered by ranking")
	assert.Equal(t, favA2.Name, thingsA[1].(map[string]any)["name"])

	thingsB, ok := byName[catB.Name]
	require.True(t, ok, "expected category %q in response", catB.Name)
	require.Len(t, thingsB, 1)
	assert.Equal(t, favB1.Name, thingsB[0].(map[string]any)["name"])
}

// TestE2E_AuditTrail verifies that create and delete mutations leave audit
// entries visible through getUserDetails, newest first.
func TestE2E_AuditTrail(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := createTestUserAndGetToken(t, ts)

	name := uniqueCategoryName()
	status, result := ts.graphqlQuery(t, createCategoryMutation, map[string]any{"name": name}, token)
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	created := gqlPayload(t, result, "createCategory")
	categoryID := int(created["id"].(float64))

	status, result = ts.graphqlQuery(t, deleteCategoryMutation, map[string]any{"id": categoryID}, token)
	require.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	status, result = ts.graphqlQuery(t,
		`query { getUserDetails { id name email auditLogs { message createdAt } } }`, nil, token)
	assert.Equal(t, http.StatusOK, status)
	requireNoErrors(t, result)

	details := gqlPayload(t, result, "getUserDetails")
	logs := details["auditLogs"].([]any)
	require.Len(t, logs, 2)

	// Newest first: the delete entry precedes the create entry.
	assert.Equal(t, fmt.Sprintf("You deleted the category: '%s'", name),
		logs[0].(map[string]any)["message"])
	assert.Equal(t, fmt.Sprintf("You created a category: '%s'", name),
		logs[1].(map[string]any)["message"])
}
