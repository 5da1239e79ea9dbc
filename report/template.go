package report

// The dashboard layout. All dynamic values come from report.Data; the
// chart images are referenced by filename relative to the document.
const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Job Search Metrics Dashboard</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            line-height: 1.6;
            color: #333;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
        }

        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }

        .header {
            background: rgba(255, 255, 255, 0.95);
            padding: 2rem;
            border-radius: 15px;
            margin-bottom: 2rem;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
            text-align: center;
        }

        .header h1 { color: #2c3e50; font-size: 2.5rem; font-weight: 300; }
        .header p { color: #7f8c8d; font-size: 1.1rem; }

        .metrics-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 1rem;
            margin-bottom: 2rem;
        }

        .metric-card {
            background: rgba(255, 255, 255, 0.95);
            padding: 1.5rem;
            border-radius: 12px;
            box-shadow: 0 4px 16px rgba(0, 0, 0, 0.1);
            text-align: center;
        }

        .metric-value { font-size: 2rem; font-weight: bold; color: #3498db; margin-bottom: 0.5rem; }
        .metric-label { color: #7f8c8d; font-size: 0.9rem; text-transform: uppercase; letter-spacing: 1px; }

        .section-title {
            background: rgba(255, 255, 255, 0.95);
            padding: 1rem 2rem;
            border-radius: 12px;
            margin-bottom: 1rem;
            box-shadow: 0 4px 16px rgba(0, 0, 0, 0.1);
        }

        .section-title h2 { color: #2c3e50; font-size: 1.5rem; font-weight: 400; }

        .chart-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(500px, 1fr));
            gap: 2rem;
            margin-bottom: 2rem;
        }

        .chart-container {
            background: rgba(255, 255, 255, 0.95);
            padding: 1.5rem;
            border-radius: 15px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
        }

        .chart-container h3 { color: #2c3e50; margin-bottom: 1rem; font-size: 1.2rem; font-weight: 500; }
        .chart-container img { width: 100%; height: auto; border-radius: 8px; }

        .analysis-section {
            background: rgba(255, 255, 255, 0.95);
            padding: 2rem;
            border-radius: 15px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
            margin-bottom: 2rem;
        }

        .analysis-section h3 { color: #2c3e50; margin-bottom: 1rem; font-size: 1.3rem; font-weight: 500; }

        .insight-item {
            background: #f8f9fa;
            padding: 1rem;
            border-left: 4px solid #3498db;
            margin-bottom: 1rem;
            border-radius: 0 8px 8px 0;
        }

        .insight-item h4 { color: #2c3e50; margin-bottom: 0.5rem; font-size: 1rem; }
        .insight-item p { color: #555; line-height: 1.5; }

        .footer {
            background: rgba(255, 255, 255, 0.95);
            padding: 2rem;
            border-radius: 15px;
            box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);
            text-align: center;
        }

        .footer p { color: #7f8c8d; font-size: 0.9rem; }

        .status-indicator {
            display: inline-block;
            width: 12px;
            height: 12px;
            border-radius: 50%;
            margin-right: 8px;
        }

        .status-closed { background-color: #e74c3c; }
        .status-open { background-color: #27ae60; }
        .status-unknown { background-color: #f39c12; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Job Search Metrics Dashboard</h1>
            <p>Analysis of job applications, interviews, and position tracking</p>
        </div>

        <div class="metrics-grid">
            <div class="metric-card">
                <div class="metric-value">{{ .Metrics.Summary.TotalApplications }}</div>
                <div class="metric-label">Total Applications</div>
            </div>
            <div class="metric-card">
                <div class="metric-value">{{ .Metrics.Summary.UniqueCompanies }}</div>
                <div class="metric-label">Unique Companies</div>
            </div>
            <div class="metric-card">
                <div class="metric-value">{{ .Metrics.Summary.Interviews }}</div>
                <div class="metric-label">Interviews Secured</div>
            </div>
            <div class="metric-card">
                <div class="metric-value">{{ pct1 .Metrics.Summary.InterviewRate }}%</div>
                <div class="metric-label">Interview Rate</div>
            </div>
            <div class="metric-card">
                <div class="metric-value">{{ .Metrics.Summary.RecruiterContacts }}</div>
                <div class="metric-label">Recruiter Contacts</div>
            </div>
            <div class="metric-card">
                <div class="metric-value">{{ f2 .Metrics.Summary.AvgQuality }}</div>
                <div class="metric-label">Avg Quality Score</div>
            </div>
        </div>

        <div class="section-title">
            <h2>Position Status Overview</h2>
        </div>
        <div class="metrics-grid">
            <div class="metric-card">
                <div class="metric-value" style="color: #e74c3c;">{{ .Metrics.Summary.Closed }}</div>
                <div class="metric-label">
                    <span class="status-indicator status-closed"></span>Closed Positions ({{ pct1 .Metrics.Summary.ClosedPct }}%)
                </div>
            </div>
            <div class="metric-card">
                <div class="metric-value" style="color: #27ae60;">{{ .Metrics.Summary.Open }}</div>
                <div class="metric-label">
                    <span class="status-indicator status-open"></span>Open Positions ({{ pct1 .Metrics.Summary.OpenPct }}%)
                </div>
            </div>
            <div class="metric-card">
                <div class="metric-value" style="color: #f39c12;">{{ .Metrics.Summary.Unknown }}</div>
                <div class="metric-label">
                    <span class="status-indicator status-unknown"></span>Unknown Status ({{ pct1 .Metrics.Summary.UnknownPct }}%)
                </div>
            </div>
        </div>

        <div class="section-title">
            <h2>Visualizations &amp; Trends</h2>
        </div>
        <div class="chart-grid">
            <div class="chart-container">
                <h3>Applications Over Time</h3>
                <img src="{{ .Images.ApplicationsOverTime }}" alt="Applications Over Time Chart">
            </div>
            <div class="chart-container">
                <h3>Quality Distribution</h3>
                <img src="{{ .Images.QualityDistribution }}" alt="Quality Distribution Chart">
            </div>
            <div class="chart-container">
                <h3>Interviews Per Month</h3>
                <img src="{{ .Images.InterviewsPerMonth }}" alt="Interviews Per Month Chart">
            </div>
            <div class="chart-container">
                <h3>High Quality Interviews Per Month</h3>
                <img src="{{ .Images.HighQualityInterviews }}" alt="High Quality Interviews Per Month Chart">
            </div>
            <div class="chart-container">
                <h3>Position Status Distribution</h3>
                <img src="{{ .Images.ClosedPositions }}" alt="Closed Positions Distribution Chart">
            </div>
            <div class="chart-container">
                <h3>High Quality Positions with Interviews</h3>
                <img src="{{ .Images.HighQualityTable }}" alt="High Quality Interview Table">
            </div>
        </div>

        <div class="analysis-section">
            <h3>Key Insights &amp; Analysis</h3>

            <div class="insight-item">
                <h4>Interview Success by Quality</h4>
                <p>{{ range $i, $q := .Metrics.InterviewByQuality }}{{ if $i }} | {{ end }}<strong>Quality {{ $q.Quality }}:</strong> {{ pct1 $q.Rate }}% interview rate{{ end }}</p>
            </div>

            <div class="insight-item">
                <h4>Recruiter Impact</h4>
                <p>Applications with recruiter involvement have a <strong>{{ pct1 .Metrics.Recruiter.WithRecruiter }}%</strong> interview rate compared to <strong>{{ pct1 .Metrics.Recruiter.WithoutRecruiter }}%</strong> without recruiters.</p>
            </div>

            <div class="insight-item">
                <h4>Position Closure Patterns</h4>
                <p>{{ .Metrics.Summary.Closed }} confirmed closed positions ({{ pct1 .Metrics.Summary.ClosedPct }}%) out of {{ .Metrics.Summary.TotalApplications }} total applications. {{ pct1 .Metrics.Summary.UnknownPct }}% of positions still have unknown status.</p>
            </div>

            <div class="insight-item">
                <h4>Geographic Distribution</h4>
                <p><strong>Remote positions:</strong> {{ .Metrics.Summary.Remote }} applications | <strong>Local positions:</strong> {{ .Metrics.Summary.Local }} applications.</p>
            </div>
        </div>

        <div class="footer">
            <p>Dashboard generated from job search data analysis | Last updated: {{ .GeneratedAt.Format "01/02/2006" }}</p>
        </div>
    </div>
</body>
</html>
`
