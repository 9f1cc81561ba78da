package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/six-jars/backend/config"
	"github.com/six-jars/backend/internal/infra/dependency"
	"github.com/six-jars/backend/internal/integration/persistence/model"
	"github.com/six-jars/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	redis       *redis.Client
	miniRedis   *miniredis.Miniredis
	emailApi    *mock.ApiMock
	accessToken string
	username    string
	userID      uuid.UUID
	values      map[string]string
}

type response struct {
	status int
	body   any
}

var (
	serverInit     sync.Once
	testDB         *mock.Db
	testRedis      *redis.Client
	testEmailApi   *mock.ApiMock
	testInjector   *dependency.Injector
	testConfig     *config.Config
	testServerPort int
	setupInit      sync.Once
)

func setupEnvironment() {
	setupInit.Do(func() {
		testServerPort = findAvailablePort()

		testEmailApi = mock.NewApiServer()
		testEmailApi.Start()

		env := map[string]string{
			"SERVER_PORT":          strconv.Itoa(testServerPort),
			"ENV":                  "test",
			"JWT_SECRET":           testJWTSecret,
			"BCRYPT_COST":          strconv.Itoa(bcrypt.MinCost),
			"RESEND_API_KEY":       "re_test_key",
			"RESEND_BASE_URL":      testEmailApi.GetUrl(),
			"EMAIL_WORKER_ENABLED": "false",
			"GEMINI_API_KEY":       "",
		}
		for key, value := range env {
			_ = os.Setenv(key, value)
		}
		testConfig = config.Load()
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	setupEnvironment()

	redisClient, miniRedis := mock.NewRedis()
	test := &testContext{
		uri:       fmt.Sprintf("http://localhost:%d", testServerPort),
		client:    &http.Client{Timeout: 10 * time.Second},
		redis:     redisClient,
		miniRedis: miniRedis,
		emailApi:  testEmailApi,
		db: mock.NewDb(map[string]any{
			"users":            &model.UserModel{},
			"refresh_tokens":   &model.RefreshTokenModel{},
			"budget_snapshots": &model.BudgetSnapshotModel{},
			"email_queue":      &model.EmailQueueModel{},
		}),
	}

	testDB = test.db
	testRedis = test.redis

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^a user "([^"]*)" exists with password "([^"]*)"$`, test.aUserExistsWithPassword)
	ctx.Given(`^"([^"]*)" has email notifications disabled$`, test.hasEmailNotificationsDisabled)

	// Header steps
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I remember the response field "([^"]*)" as "([^"]*)"$`, test.iRememberTheResponseFieldAs)

	// Infrastructure steps
	ctx.When(`^the pending expense expires$`, test.thePendingExpenseExpires)
	ctx.When(`^the email worker runs$`, test.theEmailWorkerRuns)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Email provider assertion steps
	ctx.Then(`^the email provider should have received (\d+) emails$`, test.theEmailProviderShouldHaveReceivedEmails)
	ctx.Then(`^the email provider should have received an email to "([^"]*)" with subject containing "([^"]*)"$`, test.theEmailProviderShouldHaveReceivedAnEmailTo)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.username = ""
	t.userID = uuid.Nil
	t.response = nil
	t.values = make(map[string]string)

	t.emailApi.Reset()
	t.emailApi.SetResponse(http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": "email-" + uuid.NewString()})

	if err := mock.ClearRedis(t.redis); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) startServer() error {
	var startErr error
	serverInit.Do(func() {
		gin.SetMode(gin.TestMode)

		injector, err := dependency.NewInjector(testConfig, testDB.DbConn, testRedis)
		if err != nil {
			startErr = err
			return
		}
		testInjector = injector

		engine := injector.Router.Setup(testConfig.Server.Environment)
		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", testServerPort),
			Handler: engine,
		}

		go func() {
			_ = server.ListenAndServe()
		}()
	})
	if startErr != nil {
		return startErr
	}

	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return errors.New("api server did not become healthy")
}

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) createUser(username, password string) (*model.UserModel, error) {
	now := time.Now().UTC()
	user := &model.UserModel{
		ID:                 uuid.New(),
		Username:           username,
		Email:              username + "@example.com",
		PasswordHash:       hashPassword(password),
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := t.db.DbConn.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) aUserExistsWithPassword(username, password string) error {
	_, err := t.createUser(username, password)
	return err
}

func (t *testContext) iAmLoggedInAs(username string) error {
	user, err := t.createUser(username, "SecurePass123!")
	if err != nil {
		return err
	}
	t.username = user.Username
	t.userID = user.ID

	now := time.Now().UTC()
	accessClaims := jwt.MapClaims{
		"user_id":    user.ID.String(),
		"username":   user.Username,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "six-jars",
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString
	return nil
}

func (t *testContext) hasEmailNotificationsDisabled(username string) error {
	return t.db.DbConn.Model(&model.UserModel{}).
		Where("username = ?", username).
		Update("email_notifications", false).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = t.replacePlaceholders(value)
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders substitutes {{name}} with values remembered from earlier responses.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	for name, value := range t.values {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}

	return nil
}

func (t *testContext) iRememberTheResponseFieldAs(field, name string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	t.values[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) thePendingExpenseExpires() error {
	t.miniRedis.FastForward(testConfig.Budget.PendingTTL + time.Second)
	return nil
}

func (t *testContext) theEmailWorkerRuns() error {
	if testInjector == nil {
		return errors.New("api server is not running")
	}
	testInjector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	items, ok := getFieldValue(t.response.body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, t.response.body)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, quantity, len(items))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) theEmailProviderShouldHaveReceivedEmails(quantity int) error {
	requests := t.emailApi.GetRequests(http.MethodPost, "/emails")
	if len(requests) != quantity {
		return fmt.Errorf("expected %d emails, got %d: %v", quantity, len(requests), requests)
	}
	for i := range requests {
		headers := t.emailApi.GetRequestHeaders(http.MethodPost, "/emails", i)
		if headers["Authorization"] != "Bearer re_test_key" {
			return fmt.Errorf("email %d sent without the api key: %v", i, headers)
		}
	}
	return nil
}

func (t *testContext) theEmailProviderShouldHaveReceivedAnEmailTo(recipient, subject string) error {
	requests := t.emailApi.GetRequests(http.MethodPost, "/emails")
	for _, req := range requests {
		to, _ := req["to"].([]any)
		got, _ := req["subject"].(string)
		if len(to) == 1 && to[0] == recipient && strings.Contains(got, subject) {
			return nil
		}
	}
	return fmt.Errorf("no email to %s with subject containing %q: %v", recipient, subject, requests)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
