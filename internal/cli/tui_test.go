package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/tianji/internal/domain"
	"github.com/alexanderramin/tianji/internal/intelligence"
	"github.com/alexanderramin/tianji/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ProfileListOnStartup(t *testing.T) {
	app := testApp(t)
	p := seedProfile(t, app)

	d := NewTestDriver(t, app)

	assert.Equal(t, ViewProfileList, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	view := d.View()
	assert.Contains(t, view, p.ID)
	assert.NotContains(t, view, "读取档案")
}

func TestSession_EmptyProfileList(t *testing.T) {
	app := testApp(t)

	d := NewTestDriver(t, app)

	assert.Contains(t, d.View(), "暂无档案")
}

func TestSession_QuitWithQ(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

func TestSession_QuitWithCtrlC(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
}

func TestSession_EnterOpensChart(t *testing.T) {
	app := testApp(t)
	p := seedProfile(t, app)

	d := NewTestDriver(t, app)
	d.PressEnter()

	assert.Equal(t, ViewChart, d.ActiveViewID())
	assert.Equal(t, []ViewID{ViewProfileList, ViewChart}, d.ViewStackIDs())

	state := d.State()
	require.NotNil(t, state.Profile)
	assert.Equal(t, p.ID, state.Profile.ID)
	require.NotNil(t, state.ChartResp)

	view := d.View()
	assert.Contains(t, view, "四柱排盘")
	assert.Contains(t, view, "年柱")
}

func TestSession_EscPopsBackToList(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	d := NewTestDriver(t, app)
	d.PressEnter()
	require.Equal(t, ViewChart, d.ActiveViewID())

	d.PressEsc()

	assert.Equal(t, ViewProfileList, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestSession_ChartEnterOpensTopicMenu(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	d := NewTestDriver(t, app)
	d.PressEnter()
	d.PressEnter()

	assert.Equal(t, ViewTopicMenu, d.ActiveViewID())

	view := d.View()
	assert.Contains(t, view, intelligence.Topics()[0])
	assert.Contains(t, view, divineEntry)
}

func TestSession_TopicReadingRecordsAndSaves(t *testing.T) {
	app := testApp(t)
	p := seedProfile(t, app)

	d := NewTestDriver(t, app)
	d.PressEnter() // chart
	d.PressEnter() // topic menu
	d.PressEnter() // first topic: 整体命格

	assert.Equal(t, ViewReading, d.ActiveViewID())
	assert.Equal(t, intelligence.Topics()[0], d.ActiveViewTitle())

	// Keyless client: the deterministic reading resolves during drain.
	view := d.View()
	assert.Contains(t, view, "离线推演")

	assert.Len(t, d.State().History, 1)

	readings, err := app.Readings.ListByProfile(context.Background(), p.ID, 0)
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, domain.ReadingAnalysis, readings[0].Kind)
	assert.Equal(t, intelligence.Topics()[0], readings[0].Topic)
}

func TestSession_FollowUpReadingSeesHistory(t *testing.T) {
	app := testApp(t)
	p := seedProfile(t, app)

	d := NewTestDriver(t, app)
	d.PressEnter()
	d.PressEnter()
	d.PressEnter() // first reading
	d.PressEsc()   // back to topic menu
	d.PressDown()
	d.PressEnter() // second topic

	assert.Len(t, d.State().History, 2)

	history, err := app.Profiles.History(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestSession_DivineFromMenu(t *testing.T) {
	app := testApp(t)
	p := seedProfile(t, app)

	d := NewTestDriver(t, app)
	d.PressEnter()
	d.PressEnter()
	// The casting entry sits below the fixed topics.
	for range intelligence.Topics() {
		d.PressDown()
	}
	d.PressEnter()

	assert.Equal(t, ViewReading, d.ActiveViewID())
	assert.Equal(t, divineEntry, d.ActiveViewTitle())

	view := d.View()
	assert.Contains(t, view, "本卦")

	readings, err := app.Readings.ListByProfile(context.Background(), p.ID, 0)
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, domain.ReadingDivination, readings[0].Kind)
}

func TestSession_DivineQuotaNotice(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	d := NewTestDriver(t, app)
	d.PressEnter()
	d.PressEnter()
	for range intelligence.Topics() {
		d.PressDown()
	}
	d.PressEnter() // first cast
	d.PressEsc()
	d.PressEnter() // second cast, same day

	assert.Contains(t, d.View(), "天机不可频泄")
}

func TestSession_SwitchProfileResetsContext(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	seedProfile(t, app,
		testutil.WithGender(domain.GenderFemale),
		testutil.WithBirthDate(1984, 10, 5))

	d := NewTestDriver(t, app)
	d.PressEnter() // open the top profile's chart
	first := d.State().Profile.ID
	d.PressEnter() // topic menu
	d.PressEnter() // first topic reading
	require.Len(t, d.State().History, 1)

	d.PressEsc()
	d.PressEsc()
	d.PressEsc() // back to the profile list
	d.PressDown()
	d.PressEnter() // open the other profile's chart

	state := d.State()
	require.NotNil(t, state.Profile)
	assert.NotEqual(t, first, state.Profile.ID)
	require.NotNil(t, state.ChartResp)
	assert.Empty(t, state.History)
}

func TestSession_HeaderShowsActiveProfile(t *testing.T) {
	app := testApp(t)
	p := seedProfile(t, app)

	d := NewTestDriver(t, app)
	d.PressEnter()

	assert.Contains(t, d.View(), p.ID)
}
